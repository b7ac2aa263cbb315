package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cropRepo "github.com/navya9866/Smart-agriculture/pkg/crop/repository"
	"github.com/navya9866/Smart-agriculture/pkg/market/importer"
	marketSvcImp "github.com/navya9866/Smart-agriculture/pkg/market/serviceImp"
	"github.com/navya9866/Smart-agriculture/pkg/metrics"
	"github.com/navya9866/Smart-agriculture/pkg/store"
)

func getImportPricesCmd() *cobra.Command {
	var (
		pageURL  string
		file     string
		cropID   int
		market   string
		maxBytes int
		pushURL  string
	)
	cmd := &cobra.Command{
		Use:   "import-prices",
		Short: "Imports a market price table from an HTML page",
		Long: `Reads the first table on the page with a date column and a price column
and stores each row as a market trend of the given crop. A market column
is used when present, otherwise --market.

Examples:
  server import-prices --crop 1 --url https://example.org/wheat-prices
  server import-prices --crop 2 --file prices.html --market "South Market"
  server import-prices --crop 1 --file prices.html --pushgateway http://localhost:9091`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (pageURL == "") == (file == "") {
				return errors.New("exactly one of --url or --file is required")
			}
			ctx := cmd.Context()

			var page []byte
			var err error
			if pageURL != "" {
				page, err = importer.Fetch(ctx, nil, pageURL, maxBytes)
			} else {
				page, err = os.ReadFile(file)
			}
			if err != nil {
				return err
			}
			rows, err := importer.Parse(page)
			if err != nil {
				return err
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)
			stores := store.New(db)

			if _, err := stores.Crops.FindByID(ctx, cropID); err != nil {
				if errors.Is(err, cropRepo.ErrNotFound) {
					return fmt.Errorf("crop %d does not exist", cropID)
				}
				return err
			}
			m := metrics.New()
			saved, err := marketSvcImp.NewMarketService(stores.Markets, m).Import(ctx, cropID, market, rows)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d prices for crop %d\n", len(saved), cropID)
			if pushURL != "" {
				if err := m.Push(ctx, pushURL, "import_prices"); err != nil {
					return fmt.Errorf("push metrics: %w", err)
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&pageURL, "url", "", "page to fetch")
	f.StringVar(&file, "file", "", "local HTML file")
	f.IntVar(&cropID, "crop", 0, "crop id the prices belong to")
	f.StringVar(&market, "market", "", "market name for rows without one")
	f.IntVar(&maxBytes, "max-bytes", importer.DefaultMaxBytes, "largest page accepted")
	f.StringVar(&pushURL, "pushgateway", "", "Pushgateway URL that receives the import counters")
	_ = cmd.MarkFlagRequired("crop")
	return cmd
}
