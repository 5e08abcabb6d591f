package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/AleOnori98/minigrid-dispatch/config"
	"github.com/AleOnori98/minigrid-dispatch/core/series"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the hourly energy balance of the configured day",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ts, err := series.LoadFile(cfg.Input)
	if err != nil {
		return err
	}
	day, err := ts.Day(cfg.Day)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header([]string{"Hour", "Solar", "Charge", "Discharge", "Generator", "Curtailment", "Lost Load", "Load"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var totals series.Record
	data := make([][]string, 0, len(day))
	for h, r := range day {
		data = append(data, []string{
			strconv.Itoa(h),
			fmtKWh(r.Solar),
			fmtKWh(r.BatteryCharge),
			fmtKWh(r.BatteryDischarge),
			fmtKWh(r.Generator),
			fmtKWh(r.Curtailment),
			fmtKWh(r.LostLoad),
			fmtKWh(r.Load),
		})
		totals.Solar += r.Solar
		totals.BatteryCharge += r.BatteryCharge
		totals.BatteryDischarge += r.BatteryDischarge
		totals.Generator += r.Generator
		totals.Curtailment += r.Curtailment
		totals.LostLoad += r.LostLoad
		totals.Load += r.Load
	}
	data = append(data, []string{
		"Total",
		fmtKWh(totals.Solar),
		fmtKWh(totals.BatteryCharge),
		fmtKWh(totals.BatteryDischarge),
		fmtKWh(totals.Generator),
		fmtKWh(totals.Curtailment),
		fmtKWh(totals.LostLoad),
		fmtKWh(totals.Load),
	})
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Day %d of %d, all values in kWh\n", cfg.Day+1, ts.Days())
	return err
}

func fmtKWh(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
