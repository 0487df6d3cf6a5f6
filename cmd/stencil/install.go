package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencilworks/stencil/internal/config"
	"github.com/stencilworks/stencil/internal/format"
	"github.com/stencilworks/stencil/internal/install"
	"github.com/stencilworks/stencil/internal/messages"
	"github.com/stencilworks/stencil/internal/runloop"
	"github.com/stencilworks/stencil/internal/runner"
	"github.com/stencilworks/stencil/internal/terminal"
)

var isTerminal = terminal.IsInteractive

func newInstallCmd() *cobra.Command {
	var skipInstall bool
	var skipMessage bool

	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Long:  messages.InstallLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			registry := cfg.Registry()
			if skipInstall {
				registry.DisableAll()
			}

			emphasize := format.Bold
			if !isTerminal() {
				emphasize = format.Plain
			}
			out := cmd.OutOrStdout()
			loop := runloop.New(install.QueueInstall)
			orch := &install.Orchestrator{
				Registry: registry,
				Runner: &runner.Runner{
					Dir:        root,
					Stdout:     out,
					Stderr:     cmd.ErrOrStderr(),
					WarnWriter: cmd.ErrOrStderr(),
				},
				Queue:     loop,
				Sink:      func(line string) { _, _ = fmt.Fprint(out, line) },
				Emphasize: emphasize,
				Options: install.Options{
					SkipMessage: skipMessage || cfg.Options.SkipMessage,
				},
			}

			orch.Installers(nil)
			loop.Run()
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipInstall, "skip-install", false, messages.InstallFlagSkipInstall)
	cmd.Flags().BoolVar(&skipMessage, "skip-message", false, messages.InstallFlagSkipMessage)

	return cmd
}
