package di

import (
	"github.com/JoeShih716/go-economy/internal/config"
	pkgRedis "github.com/JoeShih716/go-economy/pkg/redis"
)

// ProvideRedisClient 依設定建立 Redis 客戶端
func ProvideRedisClient(cfg *config.Config) (*pkgRedis.Client, error) {
	return pkgRedis.NewClient(pkgRedis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
