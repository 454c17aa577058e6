package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"transportledger/models"
)

type statsCmd struct {
	ledger   string
	fy       int
	topField string
	n        int
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "print status counts, top values and the monthly histogram" }
func (*statsCmd) Usage() string {
	return `ledgerctl stats [-ledger transport|owner] [-fy <year>] [-top <field>] [-n <count>]
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "ledger", "transport", "Ledger to summarize (transport or owner).")
	f.IntVar(&c.fy, "fy", 0, "Start year of the fiscal year. Defaults to the current one.")
	f.StringVar(&c.topField, "top", "vehicleNo", "Field whose most frequent values are listed.")
	f.IntVar(&c.n, "n", 5, "Number of top values.")
}

func (c *statsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, closeStore, err := openServices(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	fy := c.fy
	if fy == 0 {
		fy = svc.Reports.CurrentFiscalYear(time.Now())
	}
	stats, err := svc.Reports.Stats(ctx, c.ledger, fy, c.topField, c.n)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s ledger, FY %s: %d records\n\n", stats.Ledger, stats.FiscalYear, stats.Status.Total)
	for _, st := range models.Statuses {
		fmt.Printf("  %-12s %5d\n", st, stats.Status.Counts[string(st)])
	}
	fmt.Printf("\nTop %s:\n", stats.TopField)
	for _, fc := range stats.Top {
		fmt.Printf("  %-24s %5d\n", fc.Value, fc.Count)
	}
	fmt.Println("\nPer month:")
	for i, count := range stats.Histogram {
		fmt.Printf("  %-9s %5d %s\n", stats.Months[i], count, strings.Repeat("#", count))
	}
	return subcommands.ExitSuccess
}
