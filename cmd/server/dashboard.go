package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/analytics"
	"github.com/navya9866/Smart-agriculture/pkg/client"
)

func getDashboardCmd() *cobra.Command {
	var (
		apiURL string
		cropID int
	)
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Prints the platform overview from a running API",
		Long: `Queries a running server and prints the dashboard figures and the labor
summary. With --crop, prints that crop's market history, environment
readings and resources instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiURL == "" {
				apiURL = "http://localhost:" + cfg.Port
			}
			c, err := client.New(apiURL)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cropID != 0 {
				return printCrop(cmd, c, cropID, out)
			}

			ctx := cmd.Context()
			crops, err := c.Crops(ctx)
			if err != nil {
				return err
			}
			trends, err := c.MarketTrends(ctx, nil)
			if err != nil {
				return err
			}
			labor, err := c.Labor(ctx)
			if err != nil {
				return err
			}
			o := analytics.BuildOverview(crops, trends, labor)

			fmt.Fprintf(out, "Monitored crops:   %d\n", o.MonitoredCrops)
			fmt.Fprintf(out, "Avg market price:  $%.2f\n", o.AvgMarketPrice)
			fmt.Fprintf(out, "Active regions:    %d\n", o.ActiveRegions)
			fmt.Fprintf(out, "Avg daily wage:    $%.2f\n\n", o.AvgDailyWage)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tINDEX")
			for _, p := range o.Index {
				fmt.Fprintf(tw, "%s\t%.2f\n", p.Date, p.AvgPrice)
			}
			fmt.Fprintln(tw, "\nREGION\tWORKERS\tAVG WAGE")
			for _, r := range analytics.LaborByRegion(labor) {
				fmt.Fprintf(tw, "%s\t%d\t%.2f\n", r.Region, r.Workers, r.AvgWage)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&apiURL, "api", "", "API base URL (default http://localhost:$PORT)")
	cmd.Flags().IntVar(&cropID, "crop", 0, "show one crop in detail")
	return cmd
}

func printCrop(cmd *cobra.Command, c *client.Client, id int, out io.Writer) error {
	ctx := cmd.Context()
	crop, err := c.Crop(ctx, id)
	if err != nil {
		return err
	}
	if crop == nil {
		return fmt.Errorf("crop %d not found", id)
	}
	trends, err := c.MarketTrends(ctx, &id)
	if err != nil {
		return err
	}
	logs, err := c.EnvironmentalLogs(ctx, &id)
	if err != nil {
		return err
	}
	resources, err := c.CropResources(ctx, &id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s (%s soil, %d days)\n", crop.Name, crop.SoilType, crop.GrowthDurationDays)
	fmt.Fprintf(out, "Optimal temperature %d-%d C, humidity %d-%d %%\n\n",
		crop.OptimalTempMin, crop.OptimalTempMax, crop.OptimalHumidityMin, crop.OptimalHumidityMax)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tPRICE/TON\tMARKET")
	for _, t := range analytics.SortTrendsByDate(trends) {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", t.Date, t.PricePerTon, t.MarketName)
	}
	fmt.Fprintln(tw, "\nDATE\tTEMP\tHUMIDITY\tSTAGE")
	for _, l := range analytics.SortLogsByDate(logs) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", l.Date, l.Temperature, l.Humidity, l.GrowthStage)
	}
	fmt.Fprintln(tw, "\nCATEGORY\tRESOURCE\tRATE")
	byCat := analytics.ResourcesByCategory(resources)
	for _, cat := range []string{entities.ResourcePesticide, entities.ResourceFertilizer, entities.ResourceSeed, entities.ResourceOther} {
		for _, r := range byCat[cat] {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", cat, r.Name, r.ApplicationRate)
		}
	}
	return tw.Flush()
}
