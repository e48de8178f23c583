package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := newOutput(cmd)
			if short {
				fmt.Fprintln(out.w, version)
				return
			}
			out.fields(
				"Version", version,
				"Commit", commit,
				"Built", date,
				"Go", runtime.Version(),
				"Platform", runtime.GOOS+"/"+runtime.GOARCH,
			)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")
	return cmd
}
