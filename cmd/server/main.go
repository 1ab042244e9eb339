package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	"farmstead/internal/adapter/catalog/yamlfile"
	httpadapter "farmstead/internal/adapter/http"
	staticmaps "farmstead/internal/adapter/maps/static"
	metricsinmem "farmstead/internal/adapter/metrics/inmemory"
	gormrepo "farmstead/internal/adapter/repo/gorm"
	"farmstead/internal/adapter/repo/memory"
	"farmstead/internal/app/action"
	"farmstead/internal/app/maps"
	"farmstead/internal/app/observe"
	"farmstead/internal/app/ports"
	"farmstead/internal/app/replay"
	"farmstead/internal/app/setup"
	"farmstead/internal/app/status"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type config struct {
	Addr          string
	DSN           string
	MigrationsDir string
	MapsRoot      string
	CatalogPath   string
	StartMoney    int
	ReplayLimit   int
	AllowOrigin   string
}

func loadConfig() config {
	return config{
		Addr:          stringEnv("FARM_HTTP_ADDR", ":8080"),
		DSN:           stringEnv("FARM_DB_DSN", ""),
		MigrationsDir: stringEnv("FARM_MIGRATIONS_DIR", ""),
		MapsRoot:      resolveMapsRoot(),
		CatalogPath:   stringEnv("FARM_CATALOG_PATH", ""),
		StartMoney:    intEnv("FARM_START_MONEY", 0),
		ReplayLimit:   intEnv("FARM_REPLAY_LIMIT", replay.DefaultLimit),
		AllowOrigin:   stringEnv("FARM_CORS_ORIGIN", ""),
	}
}

func main() {
	cfg := loadConfig()

	catalog, err := yamlfile.Load(cfg.CatalogPath)
	if err != nil {
		hlog.Fatalf("load catalog: %v", err)
	}

	store := memory.NewStore()
	txManager := memory.NewTxManager(store)
	farms := memory.NewFarmRepo(store)
	var events ports.EventRepository = memory.NewEventRepo(store)
	if cfg.DSN != "" {
		journal, journalTx, err := buildJournal(context.Background(), cfg)
		if err != nil {
			hlog.Fatalf("open journal: %v", err)
		}
		events = journal
		txManager.Next = journalTx
	}

	mapProvider := staticmaps.Provider{Root: cfg.MapsRoot}
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		SetupUC: setup.UseCase{
			TxManager:  txManager,
			Farms:      farms,
			Events:     events,
			Maps:       mapProvider,
			Catalog:    catalog,
			StartMoney: cfg.StartMoney,
		},
		StatusUC:  status.UseCase{TxManager: txManager, Farms: farms},
		ObserveUC: observe.UseCase{TxManager: txManager, Farms: farms},
		ActionUC: action.UseCase{
			TxManager: txManager,
			Farms:     farms,
			Events:    events,
			Metrics:   kpiRecorder,
		},
		ReplayUC:    replay.UseCase{Events: events},
		MapsUC:      maps.UseCase{Provider: mapProvider},
		Catalog:     catalog,
		ReplayLimit: cfg.ReplayLimit,
		KPI:         kpiRecorder,
		AllowOrigin: cfg.AllowOrigin,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	hlog.Infof("farmstead server listening on %s (journal=%s, maps=%s)", cfg.Addr, journalKind(cfg.DSN), mapsSource(cfg.MapsRoot))
	s.Spin()
}

// buildJournal opens the database journal. Postgres runs the SQL
// migrations; sqlite is migrated from the row models.
func buildJournal(ctx context.Context, cfg config) (ports.EventRepository, ports.TxManager, error) {
	db, err := gormrepo.Open(cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	if journalKind(cfg.DSN) == "postgres" {
		err = gormrepo.ApplyMigrations(ctx, db, gormrepo.Migrations(cfg.MigrationsDir))
	} else {
		err = gormrepo.AutoMigrate(ctx, db)
	}
	if err != nil {
		return nil, nil, err
	}
	return gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db), nil
}

func journalKind(dsn string) string {
	switch {
	case dsn == "":
		return "memory"
	case gormrepo.IsPostgresDSN(dsn):
		return "postgres"
	default:
		return "sqlite"
	}
}

func mapsSource(root string) string {
	if root == "" {
		return "builtin"
	}
	return root
}

// resolveMapsRoot prefers FARM_MAPS_ROOT, then a ./maps directory next to
// the binary's working dir, then the built-in maps.
func resolveMapsRoot() string {
	if root := strings.TrimSpace(os.Getenv("FARM_MAPS_ROOT")); root != "" {
		return root
	}
	if info, err := os.Stat("./maps"); err == nil && info.IsDir() {
		return "./maps"
	}
	return ""
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
