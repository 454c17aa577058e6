package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write both ledgers and the settings to a JSON file" }
func (*exportCmd) Usage() string {
	return `ledgerctl export [-o <file>]

  Writes the full dataset as JSON, to stdout when no file is given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, closeStore, err := openServices(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	data, err := svc.Transfer.ExportSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.output == "" {
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, data, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "exported to %s\n", c.output)
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace both ledgers with the contents of an export" }
func (*importCmd) Usage() string {
	return `ledgerctl import <file>

  Overwrites the transport bills, owner records and any settings present in
  the file. Use "-" to read from stdin.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "import takes exactly one file argument")
		return subcommands.ExitUsageError
	}
	var (
		data []byte
		err  error
	)
	if name := f.Arg(0); name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	svc, closeStore, err := openServices(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	snap, err := svc.Transfer.ImportSnapshot(ctx, data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d owner records and %d bills.\n", len(snap.OwnerData), len(snap.TransportBills))
	return subcommands.ExitSuccess
}
