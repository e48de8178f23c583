package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nsgo-dev/nsgo/internal/errors"
)

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe error codes",
		Long:  `Without arguments, list every error code. With a code such as E202, show its category, meaning and fix.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutput(cmd)
			if len(args) == 0 {
				for _, code := range errors.GetAllCodes() {
					t, _ := errors.GetTemplate(code)
					fmt.Fprintf(out.w, "%s  %-9s %s\n", code, t.Category, t.Message)
				}
				return nil
			}

			code := strings.ToUpper(args[0])
			t, ok := errors.GetTemplate(code)
			if !ok {
				return errors.Newf(errors.CategoryCLI, "unknown error code %s", args[0]).
					WithSuggestion("Run nsgo explain to list all codes")
			}
			pairs := []string{
				"Code", code,
				"Category", string(t.Category),
				"Meaning", t.Message,
			}
			if t.Suggestion != "" {
				pairs = append(pairs, "Fix", t.Suggestion)
			}
			out.fields(pairs...)
			return nil
		},
	}
}
