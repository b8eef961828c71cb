package commands

import (
	"flag"
	"fmt"
)

const APP = "asset-acts"

const (
	DEFAULT_CREDENTIALS = "credentials.json"
	DEFAULT_TEMPLATE    = "template.docx"
	DEFAULT_OUTPUT_DIR  = "docs"
)

// Options are the global command line options shared by all commands.
type Options struct {
	Debug bool
}

// Command is the interface implemented by the asset-acts subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...interface{}) error
}

// Parse matches the first argument against the command list and parses the
// remaining arguments with the matched command's flag set. A missing command
// returns nil so the caller can fall back to help.
func Parse(cli []Command, args []string) (Command, error) {
	if len(args) == 0 {
		return nil, nil
	}

	for _, cmd := range cli {
		if cmd.Name() == args[0] {
			if err := cmd.FlagSet().Parse(args[1:]); err != nil {
				return nil, err
			}

			return cmd, nil
		}
	}

	return nil, fmt.Errorf("invalid command '%s'", args[0])
}

// command holds the options common to all asset-acts commands.
type command struct {
	credentials string
	env         string
	debug       bool
}

func (cmd *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the service account key file")
	flagset.StringVar(&cmd.env, "env", cmd.env, ".env file with the run configuration")

	return flagset
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})
}
