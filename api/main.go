package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rogerio-castellano/furniture-catalog/internal/cache"
	"github.com/rogerio-castellano/furniture-catalog/internal/catalog"
	"github.com/rogerio-castellano/furniture-catalog/internal/config"
	"github.com/rogerio-castellano/furniture-catalog/internal/db"
	api "github.com/rogerio-castellano/furniture-catalog/internal/http"
	"github.com/rogerio-castellano/furniture-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/furniture-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/furniture-catalog/internal/messaging"
	"github.com/rogerio-castellano/furniture-catalog/internal/repo"
)

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func loadCatalog(ctx context.Context, cfg config.Config) (*repo.InMemoryProductRepository, error) {
	var src repo.ProductSource
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		database, err := db.Connect(cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		defer database.Close()

		pg := repo.NewPostgresProductRepository(database)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		src = pg
	default:
		src = repo.NewFileProductSource(cfg.Catalog.Path)
	}
	return repo.LoadProductRepository(ctx, src, catalog.DefaultPriceTable())
}

func newQueryCache(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*cache.QueryCache, func()) {
	if cfg.URL == "" {
		return nil, func() {}
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		logger.Warn("⚠️ invalid redis url, query cache disabled", zap.Error(err))
		return nil, func() {}
	}
	rdb := redis.NewClient(opt)

	qc := cache.NewQueryCache(rdb, cache.DefaultPrefix, cfg.TTL)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := qc.Ping(pingCtx); err != nil {
		logger.Warn("⚠️ redis unreachable, query cache disabled", zap.Error(err))
		_ = rdb.Close()
		return nil, func() {}
	}
	return qc, func() { _ = rdb.Close() }
}

// @title Furniture Catalog API
// @version 1.0
// @description Storefront catalog browsing, WhatsApp inquiries and CSV catalog import.
// @host localhost:8080
// @BasePath /
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CATALOG_CONFIG"))
	if err != nil {
		log.Fatal("❌ Could not load config: ", err)
	}

	logger, err := newLogger(cfg.Log.Debug)
	if err != nil {
		log.Fatal("❌ Could not create logger: ", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	products, err := loadCatalog(ctx, cfg)
	if err != nil {
		logger.Fatal("❌ Could not load catalog", zap.Error(err))
	}
	logger.Info("✅ Catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("products", len(products.GetAll())),
		zap.String("version", products.Fingerprint()))

	qc, closeCache := newQueryCache(ctx, cfg.Redis, logger)
	defer closeCache()

	handlers.SetLogger(logger)
	handlers.SetProductRepo(products)
	handlers.SetQueryCache(qc)
	handlers.SetMaxUploadBytes(cfg.Import.MaxUploadMB << 20)
	handlers.SetComposer(messaging.NewComposer(messaging.Config{
		Phone:        cfg.Business.Phone,
		BusinessName: cfg.Business.Name,
		Location:     cfg.Business.Location,
		SiteURL:      cfg.Business.SiteURL,
		FacebookPage: cfg.Business.FacebookPage,
	}, messaging.WebLink))

	limiter := rl.New(cfg.Import.RatePerSecond, cfg.Import.Burst)
	go limiter.StartVisitorCleanupLoop(ctx, time.Minute)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(logger, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("✅ Server running", zap.String("addr", cfg.HTTP.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
