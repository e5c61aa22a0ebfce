package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/ledgerly/internal/bank"
	bankStore "github.com/MrJamesThe3rd/ledgerly/internal/bank/store"
	"github.com/MrJamesThe3rd/ledgerly/internal/category"
	categoryStore "github.com/MrJamesThe3rd/ledgerly/internal/category/store"
	"github.com/MrJamesThe3rd/ledgerly/internal/config"
	"github.com/MrJamesThe3rd/ledgerly/internal/database"
	ledgerlyHttp "github.com/MrJamesThe3rd/ledgerly/internal/http"
	bankHandler "github.com/MrJamesThe3rd/ledgerly/internal/http/bank"
	categoryHandler "github.com/MrJamesThe3rd/ledgerly/internal/http/category"
	importHandler "github.com/MrJamesThe3rd/ledgerly/internal/http/importfile"
	rulesHandler "github.com/MrJamesThe3rd/ledgerly/internal/http/rules"
	txHandler "github.com/MrJamesThe3rd/ledgerly/internal/http/transaction"
	"github.com/MrJamesThe3rd/ledgerly/internal/importer"
	"github.com/MrJamesThe3rd/ledgerly/internal/rules"
	rulesStore "github.com/MrJamesThe3rd/ledgerly/internal/rules/store"
	"github.com/MrJamesThe3rd/ledgerly/internal/transaction"
	txStore "github.com/MrJamesThe3rd/ledgerly/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		transactionService = transaction.NewService(txStore.New(db))
		bankService        = bank.NewService(bankStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		rulesService       = rules.NewService(rulesStore.New(db))
		importService      = importer.NewService(transactionService, bankService)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		importH      = importHandler.NewHandler(importService, cfg.Import.MaxUploadBytes)
		rulesH       = rulesHandler.NewHandler(rulesService)
		bankH        = bankHandler.NewHandler(bankService)
		categoryH    = categoryHandler.NewHandler(categoryService)
	)

	router := ledgerlyHttp.New(transactionH, importH, rulesH, bankH, categoryH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
