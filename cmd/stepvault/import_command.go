package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stepvault/internal/config"
	"stepvault/internal/organizer"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Copy an outside media file into the vault library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			v, cfg, logger, err := ctx.openVault()
			if err != nil {
				return err
			}

			return ctx.withVaultLock(func() error {
				org := organizer.New(v, cfg, logger)
				dest, err := org.Import(operationContext(cmd, "import", source), source)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s -> %s\n", source, dest)
				return nil
			})
		},
	}
}
