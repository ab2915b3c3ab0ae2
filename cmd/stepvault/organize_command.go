package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stepvault/internal/organizer"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "organize <path>",
		Short: "Copy a vault media file into the templated library layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaPath := args[0]
			v, cfg, logger, err := ctx.openVault()
			if err != nil {
				return err
			}

			return ctx.withVaultLock(func() error {
				org := organizer.New(v, cfg, logger)
				dest, err := org.Organize(operationContext(cmd, "organize", mediaPath), mediaPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Organized %s -> %s\n", mediaPath, dest)
				return nil
			})
		},
	}
}
