package common

// AlgoshVersion is the current version of algosh.
const AlgoshVersion = "0.1.0"

// ManifestFileName is the name of the project manifest file.
const ManifestFileName = "algo.toml"
