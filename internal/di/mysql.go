package di

import (
	"github.com/JoeShih716/go-economy/internal/config"
	mysqlpkg "github.com/JoeShih716/go-economy/pkg/mysql"
)

// ProvideMySQLClient 依設定建立 MySQL 客戶端
func ProvideMySQLClient(cfg *config.Config) (*mysqlpkg.Client, error) {
	return mysqlpkg.NewClient(mysqlpkg.Config{
		Host:         cfg.MySQL.Host,
		Port:         cfg.MySQL.Port,
		User:         cfg.MySQL.User,
		Password:     cfg.MySQL.Password,
		DBName:       cfg.MySQL.DBName,
		MaxOpenConns: cfg.MySQL.MaxOpenConns,
		MaxIdleConns: cfg.MySQL.MaxIdleConns,
	})
}
