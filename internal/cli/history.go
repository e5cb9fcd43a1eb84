package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/state"
	"github.com/SeamusWaldron/cubeview/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded batches",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <batch-id>",
	Short: "Show the snapshots of one batch",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of batches to show")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewBatchRepository(db)
	batches, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	if len(batches) == 0 {
		fmt.Println("No batches recorded yet")
		return nil
	}

	total, _ := repo.Count()
	fmt.Printf("Recent batches (showing %d of %d):\n", len(batches), total)
	fmt.Println()
	fmt.Printf("%-36s  %-19s  %-8s  %-6s  %-7s  %s\n", "ID", "Accepted", "Kind", "Sweeps", "History", "Moves")
	fmt.Println("------------------------------------  -------------------  --------  ------  -------  -----")

	for _, b := range batches {
		moves := b.MovesText
		if len(moves) > 40 {
			moves = moves[:37] + "..."
		}
		fmt.Printf("%-36s  %-19s  %-8s  %-6d  %-7d  %s\n",
			b.BatchID,
			b.AcceptedAt.Local().Format("2006-01-02 15:04:05"),
			b.Kind,
			b.SweepCount,
			b.HistoryCount,
			moves,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewBatchRepository(db)
	b, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("batch not found: %s", args[0])
	}

	snaps, err := repo.Snapshots(b.BatchID)
	if err != nil {
		return err
	}

	fmt.Printf("Batch:    %s\n", b.BatchID)
	fmt.Printf("Kind:     %s\n", b.Kind)
	fmt.Printf("Accepted: %s\n", b.AcceptedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Moves:    %s\n", b.MovesText)
	if b.HistoryCount != b.SweepCount {
		fmt.Printf("Sweeps:   %d (history %d)\n", b.SweepCount, b.HistoryCount)
	}

	for i, snap := range snaps {
		st, _ := state.FromSlice(snap)
		fmt.Printf("\nSnapshot %d:\n%s", i+1, st.String())
	}

	final, _ := state.FromSlice(b.FinalState)
	fmt.Printf("\nFinal:\n%s", final.String())
	return nil
}
