package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JoeShih716/go-economy/internal/backend"
	"github.com/JoeShih716/go-economy/internal/backend/memory"
	backendMySQL "github.com/JoeShih716/go-economy/internal/backend/mysql"
	backendRedis "github.com/JoeShih716/go-economy/internal/backend/redis"
	"github.com/JoeShih716/go-economy/internal/config"
	"github.com/JoeShih716/go-economy/pkg/economy"
)

// EconomyOptions 把設定檔的 economy 區段轉成後端選項
func EconomyOptions(cfg *config.Config) backend.Options {
	ec := cfg.Economy
	return backend.Options{
		Name:            ec.Name,
		Enabled:         ec.Enabled,
		BankSupport:     ec.BankSupport,
		GroupAccounts:   ec.GroupAccounts,
		StartingBalance: ec.StartingBalance,
		Currency: economy.Currency{
			Singular:         ec.Currency.Singular,
			Plural:           ec.Currency.Plural,
			Symbol:           ec.Currency.Symbol,
			FractionalDigits: ec.Currency.FractionalDigits,
		},
	}
}

// ProvideEconomy 依 economy.backend 建立經濟後端與其基礎設施客戶端
//
// 回傳的 cleanup 會關閉後端使用的連線，呼叫端在結束時必須呼叫
func ProvideEconomy(ctx context.Context, cfg *config.Config, logger *slog.Logger) (economy.Economy, func(), error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts := EconomyOptions(cfg)

	switch cfg.Economy.Backend {
	case config.BackendMemory:
		return memory.New(opts, logger), func() {}, nil

	case config.BackendRedis:
		client, err := ProvideRedisClient(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init redis: %w", err)
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logger.Warn("Failed to close redis", "error", err)
			}
		}
		return backendRedis.New(client, cfg.Redis.Prefix, opts, logger), cleanup, nil

	case config.BackendMySQL:
		client, err := ProvideMySQLClient(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init mysql: %w", err)
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logger.Warn("Failed to close mysql", "error", err)
			}
		}
		eco := backendMySQL.New(client, opts, logger)
		if cfg.MySQL.AutoMigrate {
			if err := eco.Migrate(ctx); err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("failed to migrate economy tables: %w", err)
			}
		}
		return eco, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown economy backend %q", cfg.Economy.Backend)
	}
}
