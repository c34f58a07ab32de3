package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"
	"github.com/abdosharaf9/Simple-Compiler/common"
	"github.com/abdosharaf9/Simple-Compiler/config"
	"github.com/abdosharaf9/Simple-Compiler/report"
	"github.com/spf13/afero"
)

// Execute runs the main `abdoc` application.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("abdoc", "abdoc is the front end for the abdo language", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	cli.AddStringArg("config", "c", "the path to the config file", false)
	cli.AddFlag("debug", "d", "whether to output developer trace logs")

	tokensCmd := cli.AddSubcommand("tokens", "tokenize a source file", true)
	tokensCmd.AddPrimaryArg("file-path", "the path to the source file", true)

	parseCmd := cli.AddSubcommand("parse", "check the syntax of a source file", true)
	parseCmd.AddPrimaryArg("file-path", "the path to the source file", true)
	parseCmd.AddStringArg("out", "o", "where to write the parse tree", false)

	symbolsCmd := cli.AddSubcommand("symbols", "build the symbol tables of a source file", true)
	symbolsCmd.AddPrimaryArg("file-path", "the path to the source file", true)
	symbolsCmd.AddStringArg("yaml", "y", "where to write a YAML snapshot of the symbol tables", false)

	runCmd := cli.AddSubcommand("run", "run every phase over a source file", true)
	runCmd.AddPrimaryArg("file-path", "the path to the source file", true)

	cli.AddSubcommand("init", "write a default config file", false)
	cli.AddSubcommand("version", "print the compiler version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportStdError("CLI Usage Error", err)
		os.Exit(1)
	}

	fs := afero.NewOsFs()

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "version":
		report.ReportInfo("Compiler Version", common.CompilerVersion)
		return
	case "init":
		execInitCommand(fs)
		return
	}

	// load the configuration and initialize the reporter
	cfgPath := common.ConfigFileName
	if cfgArgVal, ok := result.Arguments["config"]; ok {
		cfgPath = cfgArgVal.(string)
	}

	cfg, err := config.Load(fs, cfgPath)
	if err != nil {
		report.ReportFatal("%s", err)
	}

	if logLvlArgVal, ok := result.Arguments["loglevel"]; ok {
		cfg.LogLevel = logLvlArgVal.(string)
	}

	logLevel, ok := report.LogLevelFromName(cfg.LogLevel)
	if !ok {
		report.ReportFatal("unknown log level: `%s`", cfg.LogLevel)
	}
	report.InitReporter(logLevel)

	log := newLogger(result.HasFlag("debug"))
	defer log.Sync()

	phases := phasesOf(subcmdName)
	switch subcmdName {
	case "parse":
		if outArgVal, ok := subResult.Arguments["out"]; ok {
			cfg.TreePath = outArgVal.(string)
		}
	case "symbols":
		if yamlArgVal, ok := subResult.Arguments["yaml"]; ok {
			cfg.TablesPath = yamlArgVal.(string)
		}
	}

	srcPath, _ := subResult.PrimaryArg()

	c := NewCompiler(fs, cfg, log, shouldRender(logLevel))
	if err := c.LoadSource(srcPath); err != nil {
		report.ReportFatal("%s", err)
	}

	c.Run(phases)
	report.ReportCompilationFinished()

	if report.AnyErrors() {
		os.Exit(1)
	}
}

// phasesOf returns the phases run by a compiling subcommand.  Other
// subcommands run no phases.
func phasesOf(subcmdName string) Phase {
	switch subcmdName {
	case "tokens":
		return PhaseTokens
	case "parse":
		return PhaseParse
	case "symbols":
		return PhaseSymbols
	case "run":
		return PhaseAll
	}

	return 0
}

// shouldRender returns whether results are displayed at the given log level.
// Only verbose output shows tables and trees.
func shouldRender(logLevel int) bool {
	return logLevel == report.LogLevelVerbose
}

// execInitCommand executes the `init` subcommand in the working directory.
func execInitCommand(fs afero.Fs) {
	workDir, err := os.Getwd()
	if err != nil {
		report.ReportStdError("Path Error", err)
		os.Exit(1)
	}

	path, err := config.Init(fs, workDir)
	if err != nil {
		report.ReportStdError("Config Init Error", err)
		os.Exit(1)
	}

	report.ReportInfo("Config", "wrote `%s`", path)
}
