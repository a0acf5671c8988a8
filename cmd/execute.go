// Package cmd implements the `algo` command line application.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"github.com/semiviral/algosh/common"
	"github.com/semiviral/algosh/intern"
	"github.com/semiviral/algosh/report"
	"github.com/semiviral/algosh/syntax"
)

// TODO: implement commands
// fmt        reprint scripts in canonical form
// repl       evaluate expressions interactively

// Execute runs the main `algo` application.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("algo", "algo is a tool for checking algo scripts", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "parse a script and report errors", true)
	checkCmd.AddPrimaryArg("script-path", "the path to the script to check", true)

	projCmd := cli.AddSubcommand("project", "check the project in a directory", true)
	projCmd.AddPrimaryArg("project-path", "the path to the project directory", true)

	cli.AddSubcommand("version", "print the algo version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		return
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	logLevel, _ := report.LogLevelFromString(result.Arguments["loglevel"].(string))

	switch subcmdName {
	case "check":
		execCheckCommand(subResult, logLevel)
	case "project":
		execProjectCommand(subResult, logLevel)
	case "version":
		report.PrintInfoMessage("Algo Version", common.AlgoshVersion)
	}
}

// execCheckCommand executes the check subcommand and handles all errors.
func execCheckCommand(result *olive.ArgParseResult, logLevel int) {
	scriptRelPath, _ := result.PrimaryArg()

	scriptPath, err := filepath.Abs(scriptRelPath)
	if err != nil {
		report.PrintErrorMessage("Path Error", err)
		return
	}

	checkScript(scriptPath, report.NewReporter(logLevel))
}

// execProjectCommand executes the project subcommand: it loads the manifest in
// the given directory and checks the entry script it names.
func execProjectCommand(result *olive.ArgParseResult, logLevel int) {
	projectRelPath, _ := result.PrimaryArg()

	projectPath, err := filepath.Abs(projectRelPath)
	if err != nil {
		report.PrintErrorMessage("Path Error", err)
		return
	}

	proj, err := LoadProject(projectPath)
	if err != nil {
		report.PrintErrorMessage("Manifest Error", err)
		return
	}

	// the manifest's log level wins over the command line
	if proj.LogLevel != -1 {
		logLevel = proj.LogLevel
	}

	checkScript(proj.EntryPath, report.NewReporter(logLevel))
}

// checkScript parses the script at scriptPath and reports the result.
func checkScript(scriptPath string, r *report.Reporter) {
	buff, err := os.ReadFile(scriptPath)
	if err != nil {
		r.ReportFatal("unable to open script at `%s`: %s", scriptPath, err.Error())
		return
	}

	src := string(buff)
	interner := intern.NewInterner()

	if _, perr := syntax.ParseScript(src, interner); perr != nil {
		r.ReportError(reprPath(scriptPath), src, perr)
		os.Exit(1)
	}

	report.PrintInfoMessage("Check Passed", filepath.Base(scriptPath))
}

// reprPath shortens an absolute script path for display.
func reprPath(scriptPath string) string {
	workDir, err := os.Getwd()
	if err != nil {
		return scriptPath
	}

	rel, err := filepath.Rel(workDir, scriptPath)
	if err != nil {
		return scriptPath
	}

	return rel
}
