package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/simaogato/advisordesk/internal/adapter/httpapi"
	"github.com/simaogato/advisordesk/internal/adapter/repository/memory"
	"github.com/simaogato/advisordesk/internal/adapter/repository/postgres"
	"github.com/simaogato/advisordesk/internal/usecase/notes"
	"github.com/simaogato/advisordesk/internal/usecase/order"
	"github.com/simaogato/advisordesk/internal/usecase/portfolio"
	"github.com/simaogato/advisordesk/internal/usecase/valuation"
)

const defaultHTTPAddr = ":8080"

func main() {
	// Local .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 1. Setup the fixture dataset (the demo data source)
	store := memory.NewStore()
	clientDir := memory.NewClientDirectory(store)
	planRepo := memory.NewPlanRepository(store)
	accountRepo := memory.NewFundAccountRepository(store)
	transactionRepo := memory.NewTransactionRepository(store)
	catalog := memory.NewFundCatalog(store)
	noteRepo := memory.NewNoteRepository(store)

	// 2. When a database is configured, the note store and client directory
	// come from Postgres instead; everything else stays fixture-backed
	if connStr := databaseConnString(); connStr != "" {
		db, err := postgres.NewDB(connStr)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		noteRepo = postgres.NewNoteRepository(db)
		clientDir = postgres.NewClientDirectory(db)
		log.Info().Msg("using postgres note store and client directory")
	}

	// 3. Initialize Services (Use Cases)
	valuationEngine := valuation.NewEngine()
	portfolioService := portfolio.NewService(accountRepo)
	notesService := notes.NewService(noteRepo)
	orderService := order.NewService(catalog, accountRepo, valuationEngine)

	// 4. Start HTTP Server
	server := httpapi.NewServer(log, httpapi.Deps{
		Clients:      clientDir,
		Plans:        planRepo,
		Accounts:     accountRepo,
		Transactions: transactionRepo,
		Catalog:      catalog,
		Portfolio:    portfolioService,
		Valuation:    valuationEngine,
		Notes:        notesService,
		Orders:       orderService,
	})

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = defaultHTTPAddr
	}

	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}

	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(log, httpServer)
}

// databaseConnString builds the Postgres connection string from the
// environment. An explicit DB_CONN_STR wins; otherwise DB_HOST opts in and
// the remaining vars fill in with local defaults. Empty means "run on
// fixtures only".
func databaseConnString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}
	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = "postgres"
	}
	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "advisordesk"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(log zerolog.Logger, httpServer *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
	log.Info().Msg("http server stopped")
}
