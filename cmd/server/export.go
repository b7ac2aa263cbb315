package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/navya9866/Smart-agriculture/pkg/report"
	"github.com/navya9866/Smart-agriculture/pkg/store"
)

func getExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Writes every table to an xlsx workbook",
		Long: `Writes one sheet per table. The workbook can be edited and fed back
through "seed --xlsx" into an empty store.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			d, err := store.Snapshot(cmd.Context(), store.New(db))
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := report.WriteWorkbook(f, d); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d crops)\n", out, len(d.Crops))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "agri-export.xlsx", "output file")
	return cmd
}
