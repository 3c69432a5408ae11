package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"worddumb/internal/uploads"
)

func newJobsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "jobs",
		Short: "List recorded upload jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := uploads.Open(cfg)
			if err != nil {
				return fmt.Errorf("open uploads store: %w", err)
			}
			defer store.Close()

			jobs, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(jobs) == 0 {
				fmt.Fprintln(out, "No upload jobs recorded")
				return nil
			}

			rows := make([][]string, 0, len(jobs))
			for _, job := range jobs {
				detail := job.ErrorMessage
				if detail == "" {
					detail = "-"
				}
				rows = append(rows, []string{
					job.ID,
					strconv.FormatInt(job.BookID, 10),
					job.ASIN,
					job.Title,
					job.Status,
					job.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					detail,
				})
			}
			headers := []string{"ID", "Book", "ASIN", "Title", "Status", "Created", "Detail"}
			aligns := []columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}
}
