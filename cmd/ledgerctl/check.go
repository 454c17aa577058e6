package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "list records whose mirror in the other ledger is missing" }
func (*checkCmd) Usage() string {
	return `ledgerctl check

  Reports transport bills and owner records without a counterpart sharing
  their syncId, and syncIds used twice in one ledger. Nothing is changed.
`
}

func (*checkCmd) SetFlags(*flag.FlagSet) {}

func (*checkCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, closeStore, err := openServices(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	report, err := svc.Ledger.CheckConsistency(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if report.Consistent() {
		fmt.Println("ledgers are consistent")
		return subcommands.ExitSuccess
	}
	for _, b := range report.OrphanTransportBills {
		fmt.Printf("transport bill %s has no owner record\n", b)
	}
	for _, o := range report.OrphanOwnerRecords {
		fmt.Printf("owner record %s has no transport bill\n", o)
	}
	for _, s := range report.DuplicateSyncIDs {
		fmt.Printf("syncId %s is used more than once\n", s)
	}
	return subcommands.ExitFailure
}
