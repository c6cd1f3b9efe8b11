package handlers

import (
	"go.uber.org/zap"

	"github.com/rogerio-castellano/furniture-catalog/internal/cache"
	"github.com/rogerio-castellano/furniture-catalog/internal/messaging"
	repo "github.com/rogerio-castellano/furniture-catalog/internal/repo"
)

var (
	productRepo repo.ProductRepository
	composer    *messaging.Composer
	queryCache  *cache.QueryCache
	logger      = zap.NewNop()

	maxUploadBytes int64 = 10 << 20
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetComposer(c *messaging.Composer) {
	composer = c
}

// SetQueryCache enables result caching for product listings. A nil cache disables it.
func SetQueryCache(c *cache.QueryCache) {
	queryCache = c
}

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func SetMaxUploadBytes(n int64) {
	maxUploadBytes = n
}
