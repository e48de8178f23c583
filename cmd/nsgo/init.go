package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nsgo-dev/nsgo/internal/config"
	"github.com/nsgo-dev/nsgo/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default nsgo.json",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := filepath.Join(dir, config.ConfigFileName)

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.CategoryCLI, "%s already exists", path).
					WithSuggestion("Pass --force to overwrite it")
			}

			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			newOutput(cmd).success("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing nsgo.json")
	return cmd
}
