package main

import (
	"context"
	"log"
	"net/http"

	"transportledger/config"
	"transportledger/db"
	"transportledger/handlers"
	"transportledger/repository"
	"transportledger/routes"
	"transportledger/services"
	"transportledger/utils"
)

func main() {
	// Load config from .env or environment
	cfg := config.LoadConfig()

	store, closeStore, err := db.OpenStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("[Server] could not open %s store: %v", cfg.DBType, err)
	}
	defer closeStore()

	var uploader services.Uploader
	if cfg.R2.Enabled() {
		r2, err := utils.NewR2Uploader(context.Background(), cfg.R2)
		if err != nil {
			log.Fatalf("[Server] %v", err)
		}
		uploader = r2
	}

	svc, err := services.New(store, cfg.SecureStoreKey, cfg.FiscalYearStartMonth, uploader)
	if err != nil {
		log.Fatalf("[Server] %v", err)
	}

	h := routes.Handlers{
		Ledger:   &handlers.LedgerHandler{Ledger: svc.Ledger, Reports: svc.Reports, PageSize: cfg.PageSize},
		Reports:  &handlers.ReportHandler{Reports: svc.Reports},
		Transfer: &handlers.TransferHandler{Transfer: svc.Transfer},
		Settings: &handlers.SettingsHandler{Settings: svc.Settings},
		PDF: &handlers.PDFHandler{
			Repo:     repository.NewPDFRepository(svc.LedgerRepo, svc.SettingsRepo),
			SavePath: cfg.PDFDir,
			Uploader: uploader,
		},
	}

	log.Printf("[Server] running on port %s with %s store", cfg.Port, cfg.DBType)
	if err := http.ListenAndServe(":"+cfg.Port, routes.SetupRoutes(h)); err != nil {
		log.Fatalf("[Server] %v", err)
	}
}
