package commands

import (
	"flag"
	"fmt"
)

// NewHelp initializes the help command for the main() command list.
func NewHelp(cli []Command) *Help {
	return &Help{
		cli: cli,
	}
}

// Help is a CLI command implementation that displays the command list and
// per-command long form help.
type Help struct {
	cli     []Command
	flagset *flag.FlagSet
}

func (h *Help) Name() string {
	return "help"
}

func (h *Help) Description() string {
	return "Displays the help information for a command"
}

func (h *Help) Usage() string {
	return "<command>"
}

func (h *Help) Help() {
	fmt.Printf("Displays the help information for a command e.g. '%s help generate'\n", APP)
	fmt.Println()
}

func (h *Help) FlagSet() *flag.FlagSet {
	if h.flagset == nil {
		h.flagset = flag.NewFlagSet("help", flag.ExitOnError)
	}

	return h.flagset
}

func (h *Help) Execute(args ...interface{}) error {
	if h.flagset != nil && h.flagset.NArg() > 0 {
		topic := h.flagset.Arg(0)
		for _, cmd := range h.cli {
			if cmd.Name() == topic {
				cmd.Help()
				return nil
			}
		}

		return fmt.Errorf("invalid command '%s'", topic)
	}

	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", APP)
	fmt.Println()
	fmt.Println("  Commands:")

	for _, cmd := range h.cli {
		fmt.Printf("    %-10s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()

	return nil
}
