package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stepvault/internal/library"
	"stepvault/internal/vault"
)

func newSetCommand(ctx *commandContext) *cobra.Command {
	var (
		name        string
		description string
		dance       string
		style       string
		class       string
	)

	cmd := &cobra.Command{
		Use:   "set <path>",
		Short: "Update step metadata, renaming the file when the name changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaPath := args[0]
			v, _, logger, err := ctx.openVault()
			if err != nil {
				return err
			}

			patch := library.Patch{}
			if cmd.Flags().Changed("name") {
				patch.StepName = &name
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("dance") {
				patch.Dance = &dance
			}
			if cmd.Flags().Changed("style") {
				patch.Style = &style
			}
			if cmd.Flags().Changed("class") {
				patch.Class = &class
			}

			existed := vault.Exists(v, mediaPath)

			return ctx.withVaultLock(func() error {
				editor := library.NewEditor(v, logger)
				newPath, err := editor.Upsert(operationContext(cmd, "set", mediaPath), mediaPath, patch)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				switch {
				case !existed:
					fmt.Fprintf(out, "No media file at %s; nothing to update\n", mediaPath)
				case newPath != mediaPath:
					fmt.Fprintf(out, "Updated %s (renamed from %s)\n", newPath, mediaPath)
				default:
					fmt.Fprintf(out, "Updated %s\n", newPath)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name; renames the file to its slug")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&dance, "dance", "", "Dance the step belongs to")
	cmd.Flags().StringVar(&style, "style", "", "Style within the dance")
	cmd.Flags().StringVar(&class, "class", "", "Class level")
	return cmd
}
