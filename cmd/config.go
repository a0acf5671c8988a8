package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/semiviral/algosh/common"
	"github.com/semiviral/algosh/report"
)

// tomlProject represents a project manifest as it is encoded in TOML.
type tomlProject struct {
	Name     string `toml:"name"`
	Entry    string `toml:"entry"`
	LogLevel string `toml:"log-level"`
}

// Project is a validated project manifest.
type Project struct {
	// The declared project name.
	Name string

	// The absolute path to the entry script.
	EntryPath string

	// The log level selected by the manifest, or -1 if the manifest leaves the
	// choice to the command line.
	LogLevel int
}

// LoadProject loads and validates the manifest in the directory at abspath.
func LoadProject(abspath string) (*Project, error) {
	buff, err := os.ReadFile(filepath.Join(abspath, common.ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to open manifest at `%s`: %s", abspath, err.Error())
	}

	tomlProj := &tomlProject{}
	if err := toml.Unmarshal(buff, tomlProj); err != nil {
		return nil, fmt.Errorf("error parsing manifest at `%s`: %s", abspath, err.Error())
	}

	return validateProject(abspath, tomlProj)
}

// validateProject checks that the manifest contents are usable.
func validateProject(abspath string, tomlProj *tomlProject) (*Project, error) {
	if tomlProj.Name == "" {
		return nil, fmt.Errorf("manifest at `%s` is missing a project name", abspath)
	}

	if tomlProj.Entry == "" {
		return nil, fmt.Errorf("manifest at `%s` is missing an entry script", abspath)
	}

	proj := &Project{
		Name:      tomlProj.Name,
		EntryPath: filepath.Join(abspath, tomlProj.Entry),
		LogLevel:  -1,
	}

	if tomlProj.LogLevel != "" {
		logLevel, ok := report.LogLevelFromString(tomlProj.LogLevel)
		if !ok {
			return nil, fmt.Errorf("manifest at `%s` has an invalid log level `%s`", abspath, tomlProj.LogLevel)
		}

		proj.LogLevel = logLevel
	}

	return proj, nil
}
