package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formcheck/pkg/renderers/tui"
)

func newPromptCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "prompt",
		Aliases: []string{"p"},
		Short:   "Fill the form interactively in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, flags)
			if err != nil {
				return err
			}
			formCfg, err := rt.cfg.FormConfig()
			if err != nil {
				return err
			}
			session, err := tui.New(
				tui.WithFormConfig(formCfg),
				tui.WithLogger(rt.logger),
			)
			if err != nil {
				return err
			}
			result, err := session.Run(cmd.Context())
			if err != nil {
				return err
			}
			if !result.Outcome.Accepted {
				fmt.Fprintln(cmd.OutOrStdout(), "Form was not submitted.")
				return errRejected
			}
			return nil
		},
	}
}
