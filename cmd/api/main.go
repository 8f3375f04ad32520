package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/adityarp/duit/internal/account"
	accountStore "github.com/adityarp/duit/internal/account/store"
	"github.com/adityarp/duit/internal/analytics"
	"github.com/adityarp/duit/internal/auth"
	"github.com/adityarp/duit/internal/budget"
	budgetStore "github.com/adityarp/duit/internal/budget/store"
	"github.com/adityarp/duit/internal/category"
	categoryStore "github.com/adityarp/duit/internal/category/store"
	"github.com/adityarp/duit/internal/config"
	"github.com/adityarp/duit/internal/database"
	"github.com/adityarp/duit/internal/export"
	duitHttp "github.com/adityarp/duit/internal/http"
	accountHandler "github.com/adityarp/duit/internal/http/account"
	analyticsHandler "github.com/adityarp/duit/internal/http/analytics"
	budgetHandler "github.com/adityarp/duit/internal/http/budget"
	categoryHandler "github.com/adityarp/duit/internal/http/category"
	profileHandler "github.com/adityarp/duit/internal/http/profile"
	txHandler "github.com/adityarp/duit/internal/http/transaction"
	"github.com/adityarp/duit/internal/profile"
	profileStore "github.com/adityarp/duit/internal/profile/store"
	"github.com/adityarp/duit/internal/transaction"
	txStore "github.com/adityarp/duit/internal/transaction/store"
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

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	accounts := accountStore.New(db)

	var (
		accountService     = account.NewService(accounts)
		categoryService    = category.NewService(categoryStore.New(db))
		transactionService = transaction.NewService(txStore.New(db), accounts)
		exportService      = export.NewService(transactionService)
		budgetService      = budget.NewService(budgetStore.New(db))
		profileService     = profile.NewService(profileStore.New(db))
		analyticsService   = analytics.NewService(
			transactionService,
			accountService,
			analytics.WithClampedSavingsRate(cfg.Analytics.ClampSavingsRate),
		)
	)

	var (
		accountH     = accountHandler.NewHandler(accountService)
		categoryH    = categoryHandler.NewHandler(categoryService)
		transactionH = txHandler.NewHandler(transactionService, exportService)
		budgetH      = budgetHandler.NewHandler(budgetService)
		analyticsH   = analyticsHandler.NewHandler(analyticsService)
		profileH     = profileHandler.NewHandler(profileService)
	)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	router := duitHttp.New(
		verifier,
		cfg.CORS.AllowedOrigins,
		accountH,
		categoryH,
		transactionH,
		budgetH,
		analyticsH,
		profileH,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
