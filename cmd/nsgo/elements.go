package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nsgo-dev/nsgo/internal/errors"
	"github.com/nsgo-dev/nsgo/pkg/inspect"
)

func elementsCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "elements",
		Short: "List registered elements",
		Long:  `List every registered element name: built-ins, inline elements and manifest elements.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := flags.buildApp(cmd.Context())
			if err != nil {
				return err
			}
			names := app.Registry().Names()
			out := newOutput(cmd)

			if asJSON {
				return out.json(names)
			}
			for _, name := range names {
				fmt.Fprintln(out.w, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as a JSON array")
	return cmd
}

func resolveCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve <tag>...",
		Short: "Show how tag names resolve",
		Long: `Resolve each tag name the way the renderer would: exact name first,
then lowercase. Fails if any tag is unknown or its view cannot be loaded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := flags.buildApp(cmd.Context())
			if err != nil {
				return err
			}

			failed := 0
			var descs []inspect.Description
			for _, tag := range args {
				d := inspect.Describe(app.Registry(), tag)
				descs = append(descs, d)
				if !d.Known || d.Error != "" {
					failed++
				}
			}

			out := newOutput(cmd)
			if asJSON {
				if err := out.json(descs); err != nil {
					return err
				}
			} else {
				for _, d := range descs {
					out.description(d)
				}
			}

			if failed > 0 {
				return errors.Newf(errors.CategoryCLI, "%d of %d tags did not resolve", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func (o output) description(d inspect.Description) {
	switch {
	case !d.Known:
		o.failure("%s: unknown element", d.Name)
		return
	case d.Error != "":
		o.failure("%s: %s", d.Name, d.Error)
		return
	}
	o.success("%s → %s (%s)", d.Name, d.Class, d.Kind)
	if d.SkipAddToDom {
		o.info("skipAddToDom")
	}
	if d.InsertChild {
		o.info("custom insertChild")
	}
	if d.RemoveChild {
		o.info("custom removeChild")
	}
}
