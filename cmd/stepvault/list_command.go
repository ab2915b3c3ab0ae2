package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"stepvault/internal/library"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		search  string
		dances  []string
		styles  []string
		classes []string
		sortArg string
		root    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List steps in the vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, cfg, logger, err := ctx.openVault()
			if err != nil {
				return err
			}

			scanRoot := root
			if !cmd.Flags().Changed("root") {
				scanRoot = cfg.Scanner.RootFolder
			}

			scanner := library.NewScanner(v, cfg, logger)
			items, err := scanner.Scan(operationContext(cmd, "list", ""), scanRoot)
			if err != nil {
				return err
			}

			filters := library.Filters{Dances: dances, Styles: styles, Classes: classes}
			items = library.Query(items, search, filters, library.ParseSortMode(sortArg))

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No steps found")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{
					item.Name,
					item.Dance,
					item.Style,
					item.Class,
					strconv.Itoa(item.PlayCount),
					formatPlayed(item.LastPlayedAt),
					item.Path,
				})
			}
			headers := []string{"Name", "Dance", "Style", "Class", "Plays", "Last Played", "Path"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft}
			fmt.Fprintln(out, renderTable(headers, rows, aligns, shouldColorize(out)))
			fmt.Fprintf(out, "%d step(s)\n", len(items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive substring search")
	cmd.Flags().StringSliceVar(&dances, "dance", nil, "Restrict to the given dance(s)")
	cmd.Flags().StringSliceVar(&styles, "style", nil, "Restrict to the given style(s)")
	cmd.Flags().StringSliceVar(&classes, "class", nil, "Restrict to the given class(es)")
	cmd.Flags().StringVar(&sortArg, "sort", "az", "Sort mode: az, recent, or mostPlayed")
	cmd.Flags().StringVar(&root, "root", "", "Scan only below this vault folder")
	return cmd
}

func formatPlayed(millis int64) string {
	if millis <= 0 {
		return "never"
	}
	return time.UnixMilli(millis).UTC().Format("2006-01-02 15:04")
}
