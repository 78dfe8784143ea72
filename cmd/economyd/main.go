package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/JoeShih716/go-economy/internal/di"
	"github.com/JoeShih716/go-economy/internal/kit/bootstrap"
	"github.com/JoeShih716/go-economy/pkg/economy"
)

func main() {
	// 1. 初始化 App (載入 Config, Logger)
	app := bootstrap.NewApp("economyd")
	ctx := context.Background()

	// 2. 依設定建立經濟後端
	eco, cleanup, err := di.ProvideEconomy(ctx, app.Config, app.Logger)
	if err != nil {
		slog.Error("Economy initialization failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Economy ready",
		"backend", app.Config.Economy.Backend,
		"name", eco.Name(),
		"enabled", eco.IsEnabled(),
		"banks", eco.HasBankSupport(),
		"fractional_digits", eco.FractionalDigits(),
		"currency", eco.CurrencyNamePlural(),
	)
	if !eco.IsEnabled() {
		slog.Warn("Economy is disabled, plugins should not use it")
	}

	interval := time.Duration(app.Config.App.StatusIntervalSec) * time.Second

	// 3. 啟動服務: 定期回報狀態直到收到停止信號
	app.Run(func(ctx context.Context) error {
		if interval <= 0 {
			<-ctx.Done()
			return nil
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				logStatus(ctx, eco)
			}
		}
	}, cleanup)
}

func logStatus(ctx context.Context, eco economy.Economy) {
	attrs := []any{"name", eco.Name(), "enabled", eco.IsEnabled()}
	if eco.HasBankSupport() {
		attrs = append(attrs, "bank_count", len(eco.GetBanks(ctx)))
	}
	slog.InfoContext(ctx, "Economy status", attrs...)
}
