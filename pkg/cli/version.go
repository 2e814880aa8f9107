package cli

import (
	"flag"
	"fmt"
)

// Version is set at build time with -ldflags "-X .../pkg/cli.Version=..."
var Version = "dev"

func newVersionCommand() *Command {
	return &Command{
		Name:        "version",
		Description: "Print the version",
		Flags:       flag.NewFlagSet("version", flag.ExitOnError),
		Run: func(args []string) error {
			fmt.Printf("spoke-docbook %s\n", Version)
			return nil
		},
	}
}
