package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/shellsense/internal/app"
	"github.com/doeshing/shellsense/internal/domain"
)

const msgNoHistoryRecorded = "No resolutions recorded yet."

// NewHistoryCommand creates the history command with its subcommands.
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the resolution audit trail",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistorySearchCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent resolutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				fmt.Fprintln(cmd.OutOrStdout(), msgNoHistoryRecorded)
				return nil
			}
			records, err := container.HistoryStore.Recent(limit)
			if err != nil {
				return err
			}
			renderRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show")
	return cmd
}

func newHistorySearchCommand(container *app.Container) *cobra.Command {
	var query string
	var limit int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search resolutions by request or command",
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return fmt.Errorf("--query required")
			}
			if container.HistoryStore == nil {
				fmt.Fprintln(cmd.OutOrStdout(), msgNoHistoryRecorded)
				return nil
			}
			records, err := container.HistoryStore.Search(query, limit)
			if err != nil {
				return err
			}
			renderRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search keyword")
	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistorySearchLimit, "Limit search results")
	return cmd
}

func renderRecords(w io.Writer, records []domain.ResolutionRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, msgNoHistoryRecorded)
		return
	}
	for _, rec := range records {
		fmt.Fprintf(w, "%s  [%s/%s]  %s\n",
			rec.Timestamp.Local().Format(time.DateTime), rec.Outcome, rec.Tier, rec.Request)
		if rec.Command != "" {
			fmt.Fprintf(w, "    %s\n", rec.Command)
		}
		if len(rec.MatchedPatterns) > 0 {
			fmt.Fprintf(w, "    matched: %v\n", rec.MatchedPatterns)
		}
	}
}
