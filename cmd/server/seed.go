package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/navya9866/Smart-agriculture/database"
	"github.com/navya9866/Smart-agriculture/pkg/report"
	"github.com/navya9866/Smart-agriculture/pkg/store"
)

func getSeedCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fills an empty store with sample data",
		Long: `Inserts the sample crops, resources, market trends, environmental logs
and labor rows. Nothing happens when the store already holds a crop.

Examples:
  server seed
  server seed --xlsx farm-data.xlsx
  server seed --random-seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			opts, err := seedOptions(cfg.SeedXLSX, cfg.SeedRandom, nil)
			if err != nil {
				return err
			}
			res, err := database.Seed(cmd.Context(), store.New(db), opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Skipped {
				fmt.Fprintln(out, "store already seeded, nothing to do")
				return nil
			}
			for _, table := range []string{"crops", "crop_resources", "market_trends", "environmental_logs", "labor_availability"} {
				fmt.Fprintf(out, "%-20s %d\n", table, res.Rows[table])
			}
			return nil
		},
	}
	cmd.Flags().String("xlsx", "", "workbook whose sheets replace the built-in rows")
	cmd.Flags().Int64("random-seed", 0, "seed for the sample price and reading jitter (0 = random)")
	_ = v.BindPFlag("SEED_XLSX", cmd.Flags().Lookup("xlsx"))
	_ = v.BindPFlag("SEED_RANDOM", cmd.Flags().Lookup("random-seed"))
	return cmd
}

func seedOptions(xlsx string, randomSeed int64, rec database.SeedRecorder) (database.SeedOptions, error) {
	opts := database.SeedOptions{RandomSeed: randomSeed, Recorder: rec}
	if xlsx != "" {
		d, err := report.OpenWorkbook(xlsx)
		if err != nil {
			return opts, err
		}
		opts.Dataset = &d
	}
	return opts, nil
}
