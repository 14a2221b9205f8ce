package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/app"
	"github.com/priyanka857/Major-Project-1/internal/devtools"
	"github.com/priyanka857/Major-Project-1/internal/modules/cart"
	"github.com/priyanka857/Major-Project-1/internal/snapshot"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		log.Fatal("API_BASE_URL environment variable is required")
	}

	ctx := context.Background()

	snap, err := snapshot.FromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to open snapshot store: %v", err)
	}
	logger.Info("snapshot_store", slog.String("driver", snap.Driver))

	var mw []store.Middleware[app.State]
	var rec *devtools.Recorder
	if addr := os.Getenv("DEVTOOLS_ADDR"); addr != "" {
		rec = devtools.NewRecorder(0)
		mw = append(mw, devtools.Record[app.State](rec))
	}

	a := app.New(ctx, app.Config{
		API:        api.NewClient(baseURL, logger),
		Snapshot:   snap.Store,
		Logger:     logger,
		Pricing:    cart.PolicyFromEnv(),
		Middleware: mw,
	})

	st := a.Store.GetState()
	logger.Info("store_hydrated",
		slog.String("session", string(st.Session.Status)),
		slog.Int("cart_items", len(st.Cart.Items)),
		slog.String("checkout_step", a.CheckoutStep().String()),
	)

	// Warm the catalog so a consumer attaching through devtools sees data.
	if err := a.Products.List(ctx); err != nil {
		logger.Warn("product_list_failed", slog.String("error", err.Error()))
	}

	if addr := os.Getenv("DEVTOOLS_ADDR"); addr != "" {
		r := devtools.NewServer(a.Store, rec, logger)
		logger.Info("devtools_listening", slog.String("addr", addr))
		if err := r.Run(addr); err != nil {
			log.Fatalf("devtools server: %v", err)
		}
	}
}
