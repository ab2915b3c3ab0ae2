package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"stepvault/internal/library"
	"stepvault/internal/services"
	"stepvault/internal/sidecar"
	"stepvault/internal/vault"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var withBody bool

	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Show metadata for one step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaPath := args[0]
			v, cfg, logger, err := ctx.openVault()
			if err != nil {
				return err
			}

			if !vault.Exists(v, mediaPath) {
				return services.Wrap(services.ErrNotFound, "show", "resolve media", "no step at "+mediaPath, nil)
			}

			scanner := library.NewScanner(v, cfg, logger)
			items, err := scanner.Scan(operationContext(cmd, "show", mediaPath), "")
			if err != nil {
				return err
			}

			var item *library.Item
			for i := range items {
				if items[i].Path == mediaPath {
					item = &items[i]
					break
				}
			}
			if item == nil {
				return services.Wrap(services.ErrNotFound, "show", "resolve media", "no step at "+mediaPath, nil)
			}

			rows := [][]string{
				{"Name", item.Name},
				{"Description", item.Description},
				{"Dance", item.Dance},
				{"Style", item.Style},
				{"Class", item.Class},
				{"Plays", strconv.Itoa(item.PlayCount)},
				{"Last played", formatPlayed(item.LastPlayedAt)},
				{"Added", item.AddedAt.UTC().Format("2006-01-02 15:04")},
				{"Thumbnail", item.ThumbnailPath},
				{"Path", item.Path},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, nil, shouldColorize(out)))

			if withBody {
				if text, err := v.ReadText(library.SidecarPathFor(mediaPath)); err == nil {
					fmt.Fprintln(out)
					fmt.Fprint(out, sidecar.Parse(text).Body)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withBody, "body", false, "Print the sidecar body as well")
	return cmd
}
