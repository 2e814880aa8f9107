package cli

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Command represents a CLI command
type Command struct {
	Name        string
	Description string
	Run         func(args []string) error
	Subcommands map[string]*Command
	Flags       *flag.FlagSet
}

// NewRootCommand creates the root command
func NewRootCommand() *Command {
	root := &Command{
		Name:        "spoke-docbook",
		Description: "Spoke DocBook - Protobuf schema documentation renderer",
		Subcommands: make(map[string]*Command),
		Flags:       flag.NewFlagSet("spoke-docbook", flag.ExitOnError),
	}

	root.Subcommands["render"] = newRenderCommand()
	root.Subcommands["watch"] = newWatchCommand()
	root.Subcommands["template"] = newTemplateCommand()
	root.Subcommands["version"] = newVersionCommand()

	return root
}

// Execute runs the command with the process arguments
func (c *Command) Execute() error {
	return c.dispatch(os.Args[1:])
}

func (c *Command) dispatch(args []string) error {
	if len(args) == 0 {
		return c.usage()
	}

	switch strings.ToLower(args[0]) {
	case "-h", "--help", "help":
		return c.usage()
	}

	if subcmd, ok := c.Subcommands[args[0]]; ok {
		return subcmd.Run(args[1:])
	}

	return fmt.Errorf("unknown command: %s", args[0])
}

// usage prints the command usage
func (c *Command) usage() error {
	names := make([]string, 0, len(c.Subcommands))
	for name := range c.Subcommands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Usage: %s <command> [args]\n\n", c.Name)
	fmt.Printf("Commands:\n")
	for _, name := range names {
		fmt.Printf("  %-15s %s\n", name, c.Subcommands[name].Description)
	}
	return nil
}
