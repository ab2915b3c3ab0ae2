package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stepvault/internal/library"
	"stepvault/internal/services"
	"stepvault/internal/vault"
)

func newPlayedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "played <path>",
		Short: "Record a playback of the given step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaPath := args[0]
			v, _, logger, err := ctx.openVault()
			if err != nil {
				return err
			}
			if !vault.Exists(v, mediaPath) {
				return services.Wrap(services.ErrNotFound, "played", "resolve media", "no step at "+mediaPath, nil)
			}

			return ctx.withVaultLock(func() error {
				editor := library.NewEditor(v, logger)
				if _, err := editor.MarkPlayed(operationContext(cmd, "played", mediaPath), mediaPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded playback of %s\n", mediaPath)
				return nil
			})
		},
	}
}
