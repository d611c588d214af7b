package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	httpadapter "undercity/internal/adapter/http"
	metricsinmem "undercity/internal/adapter/metrics/inmemory"
	"undercity/internal/adapter/regen"
	gormrepo "undercity/internal/adapter/repo/gorm"
	"undercity/internal/app/feed"
	"undercity/internal/app/history"
	"undercity/internal/app/resolve"
	"undercity/internal/app/status"
	"undercity/internal/config"
	"undercity/internal/domain/crime"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	db, err := gormrepo.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	catalog := mustLoadCatalog(cfg.RulesPath)
	characterRepo := gormrepo.NewCharacterRepo(db)
	historyRepo := gormrepo.NewCrimeHistoryRepo(db)
	eventRepo := gormrepo.NewGameEventRepo(db)
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		ResolveUC: resolve.UseCase{
			TxManager:  gormrepo.NewTxManager(db),
			Characters: characterRepo,
			History:    historyRepo,
			Events:     eventRepo,
			Catalog:    catalog,
			Metrics:    kpiRecorder,
			Now:        time.Now,
		},
		StatusUC:       status.UseCase{Characters: characterRepo, Now: time.Now},
		HistoryUC:      history.UseCase{History: historyRepo},
		FeedUC:         feed.UseCase{Events: eventRepo},
		Catalog:        catalog,
		KPI:            kpiRecorder,
		ResolveTimeout: cfg.ResolveTimeout.Std(),
	}

	if cfg.Regen.Cron != "" {
		ticker, err := regen.New(cfg.Regen.Cron, cfg.Regen.Amount, characterRepo)
		if err != nil {
			log.Fatalf("schedule energy regen: %v", err)
		}
		ticker.Start()
		defer ticker.Stop()
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Printf("undercity server listening on %s", cfg.Addr)
	s.Spin()
}

func resolveConfigPath() string {
	if path := strings.TrimSpace(os.Getenv("UNDERCITY_CONFIG")); path != "" {
		return path
	}
	return "config.yaml"
}

func mustLoadCatalog(path string) *crime.Catalog {
	if path == "" {
		return crime.DefaultCatalog()
	}
	catalog, err := crime.LoadCatalog(path)
	if err != nil {
		log.Fatalf("load crime rules: %v", err)
	}
	return catalog
}
