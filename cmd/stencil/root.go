package main

import (
	"github.com/spf13/cobra"

	"github.com/stencilworks/stencil/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)

	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newInitCmd())

	return cmd
}
