package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stencilworks/stencil/internal/config"
	"github.com/stencilworks/stencil/internal/messages"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := getwd()
			if err != nil {
				return err
			}
			path := filepath.Join(root, config.FileName)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf(messages.InitConfigExistsFmt, path)
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := os.WriteFile(path, []byte(config.DefaultTOML), 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.InitWroteConfigFmt, path)
			return nil
		},
	}

	return cmd
}
