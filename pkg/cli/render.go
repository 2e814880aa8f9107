package cli

import (
	"context"
	"flag"
	"fmt"
)

func newRenderCommand() *Command {
	cmd := &Command{
		Name:        "render",
		Description: "Render proto files into a DocBook document",
		Flags:       flag.NewFlagSet("render", flag.ExitOnError),
		Run:         runRender,
	}

	addRenderFlags(cmd.Flags)

	return cmd
}

func runRender(args []string) error {
	cmd := newRenderCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	files := cmd.Flags.Args()
	if len(files) == 0 {
		return fmt.Errorf("no proto files given")
	}

	flags := readRenderFlags(cmd.Flags)
	ctx := context.Background()

	env, err := newRunEnv(ctx, flags)
	if err != nil {
		return err
	}
	defer env.close(ctx)

	return env.render(ctx, flags.out, flags.importPaths, files)
}
