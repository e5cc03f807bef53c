package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tunegrab-cli/tunegrab/history"
	"github.com/tunegrab-cli/tunegrab/icon"
	"github.com/tunegrab-cli/tunegrab/style"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Bool("clear", false, "Remove every saved download record")
}

// historyCmd lists the locally saved download records.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display previously completed downloads",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := history.Get()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("clear")) {
			for _, record := range saved {
				handleErr(history.Remove(record))
			}
			fmt.Printf("%s cleared history\n", icon.Get(icon.Success))
			return
		}

		if len(saved) == 0 {
			fmt.Printf("%s history is empty\n", icon.Get(icon.Warning))
			return
		}

		records := lo.Values(saved)
		// Most recent first.
		slices.SortFunc(records, func(a, b *history.SavedDownload) int {
			return b.SavedAt.Compare(a.SavedAt)
		})

		for _, record := range records {
			fmt.Printf("%s %s %s\n",
				icon.Get(icon.Download),
				record,
				style.Faint(record.SavedAt.Format("2006-01-02 15:04")))
		}
	},
}
