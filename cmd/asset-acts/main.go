package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nonGratis/asset-acts/commands"
)

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	cli := []commands.Command{
		&commands.GenerateCmd,
		&commands.VersionCmd,
	}

	help := commands.NewHelp(cli)
	cli = append(cli, help)

	logger := newLogger(options.Debug)
	defer logger.Sync()

	zap.ReplaceGlobals(logger)

	cmd, err := commands.Parse(cli, flag.Args())
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute(&options)
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		zap.S().Errorf("%v", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error

	if debug {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		logger, err = config.Build()
	} else {
		logger, err = zap.NewProduction()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: unable to initialize logger (%v)\n", err)
		os.Exit(1)
	}

	return logger
}
