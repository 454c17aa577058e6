// Command ledgerctl runs maintenance tasks against the configured ledger store.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"transportledger/config"
	"transportledger/db"
	"transportledger/services"
)

var commands = []subcommands.Command{
	&exportCmd{},
	&importCmd{},
	&statsCmd{},
	&checkCmd{},
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// openServices connects to the store named by the environment.
func openServices(ctx context.Context) (*services.Services, func(), error) {
	cfg := config.LoadConfig()
	store, closeStore, err := db.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc, err := services.New(store, cfg.SecureStoreKey, cfg.FiscalYearStartMonth, nil)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return svc, closeStore, nil
}
