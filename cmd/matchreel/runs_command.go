package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"matchreel/internal/journal"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var clipsRunID string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent run history from the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := journal.Open(cfg.JournalPath)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if clipsRunID != "" {
				clips, err := store.RunClips(cmd.Context(), clipsRunID)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(clips))
				for _, clip := range clips {
					rows = append(rows, []string{
						strconv.Itoa(clip.Index), clip.Status, clip.Detail,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Clip", "Status", "Detail"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
				return nil
			}

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				finished := ""
				if run.FinishedAt != nil {
					finished = run.FinishedAt.Format("2006-01-02 15:04:05")
				}
				rows = append(rows, []string{
					run.ID,
					run.RecordPath,
					run.Outcome,
					strconv.Itoa(run.Rendered),
					strconv.Itoa(run.Cached),
					strconv.Itoa(run.Failed),
					run.StartedAt.Format("2006-01-02 15:04:05"),
					finished,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Record", "Outcome", "Rendered", "Cached", "Failed", "Started", "Finished"},
				rows,
				[]columnAlignment{
					alignLeft, alignLeft, alignLeft,
					alignRight, alignRight, alignRight,
					alignLeft, alignLeft,
				},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	cmd.Flags().StringVar(&clipsRunID, "clips", "", "Show per-clip detail for the given run ID")
	return cmd
}
