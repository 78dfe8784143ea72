package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JoeShih716/go-economy/internal/config"
)

// App 封裝了應用程式的基礎組件
type App struct {
	Name   string
	Config *config.Config
	Logger *slog.Logger
}

// NewApp 建立一個新的應用程式實例
//
// 1. 初始化 Default Logger
// 2. 載入 Config (config.yaml + Env Override)
// 3. 依環境重新配置 Logger
func NewApp(appName string) *App {
	// 1. 初始化基礎 Logger
	slog.SetDefault(NewLogger(os.Stdout, ""))

	// 2. 載入設定
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 3. 根據環境重新配置 Logger
	logger := NewLogger(os.Stdout, cfg.App.Env)
	slog.SetDefault(logger) // 更新 Default Logger

	return &App{
		Name:   appName,
		Config: cfg,
		Logger: logger,
	}
}

// NewLogger 依環境建立 Logger
// Production -> JSON (Structured Logging)
// Others     -> Text (Readable)
func NewLogger(w io.Writer, env string) *slog.Logger {
	var handler slog.Handler
	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, nil)
	default:
		handler = slog.NewTextHandler(w, nil)
	}
	return slog.New(handler)
}

// Run 啟動應用程式並等待停止信號
//
// startFunc: 服務主迴圈，ctx 在收到 SIGINT/SIGTERM 時取消
// cleanupFunc: 收到停止信號後的清理邏輯
func (a *App) Run(startFunc func(ctx context.Context) error, cleanupFunc func()) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 背景啟動服務
	done := make(chan error, 1)
	go func() {
		a.Logger.Info("Starting service", "app", a.Name, "env", a.Config.App.Env)
		done <- startFunc(ctx)
	}()

	select {
	case <-ctx.Done():
		a.Logger.Info("Shutting down service...", "app", a.Name)
	case err := <-done:
		if err != nil {
			a.Logger.Error("Service stopped unexpectedly", "error", err)
			if cleanupFunc != nil {
				cleanupFunc()
			}
			os.Exit(1)
		}
	}

	if cleanupFunc != nil {
		cleanupFunc()
	}
	a.Logger.Info("Service exited", "app", a.Name)
}
