package cli

import (
	"context"
	"flag"
	"fmt"
)

func newTemplateCommand() *Command {
	cmd := &Command{
		Name:        "template",
		Description: "Print or write the empty template document",
		Flags:       flag.NewFlagSet("template", flag.ExitOnError),
		Run:         runTemplate,
	}

	addRenderFlags(cmd.Flags)

	return cmd
}

func runTemplate(args []string) error {
	cmd := newTemplateCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	flags := readRenderFlags(cmd.Flags)
	ctx := context.Background()

	env, err := newRunEnv(ctx, flags)
	if err != nil {
		return err
	}
	defer env.close(ctx)

	doc := env.renderer().TemplateDocument()
	if flags.out == "" {
		fmt.Print(doc)
		return nil
	}

	s, err := env.openSink(ctx, flags.out)
	if err != nil {
		return err
	}
	return s.WriteTemplate(ctx, doc)
}
