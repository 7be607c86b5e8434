// README: Entry point; loads config, wires collaborators, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roadfit/internal/ai"
	"roadfit/internal/config"
	httptransport "roadfit/internal/http"
	"roadfit/internal/infra"
	"roadfit/internal/modules/inventory"
	"roadfit/internal/modules/recommend"
	"roadfit/internal/routeplan"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache *inventory.Cache
	if cfg.Redis.Addr != "" {
		cache = inventory.NewCache(infra.NewRedis(cfg.Redis.Addr), cfg.Inventory.CacheTTL)
	}

	var catalog *inventory.Store
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		catalog = inventory.NewStore(dbPool)
	}

	inventorySvc := inventory.NewService(
		inventory.NewClient(cfg.Inventory.BookingAPIURL),
		cache,
		catalog,
	)

	var planner recommend.TracePlanner
	if cfg.Maps.APIKey != "" {
		builder, err := routeplan.NewBuilder(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		planner = builder
	}

	var advisor ai.Advisor
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiAdvisor(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		advisor = gemini
	}

	recommendSvc := recommend.NewService(inventorySvc, planner, advisor, cfg.Scoring.TopN)

	router := httptransport.NewRouter(recommendSvc, inventorySvc)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("roadfit-api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
