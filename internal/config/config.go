package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Backend 名稱
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMySQL  = "mysql"
)

// Config 總配置結構
type Config struct {
	App     AppConfig     `yaml:"app"`
	Economy EconomyConfig `yaml:"economy"`
	Redis   RedisConfig   `yaml:"redis"`
	MySQL   MySQLConfig   `yaml:"mysql"`
}

type AppConfig struct {
	Name              string `yaml:"name"`
	Env               string `yaml:"env"`
	StatusIntervalSec int    `yaml:"status_interval_sec"` // 週期性狀態日誌間隔，0 表示關閉
}

// EconomyConfig 經濟後端設定
type EconomyConfig struct {
	Backend         string          `yaml:"backend"` // memory | redis | mysql
	Name            string          `yaml:"name"`
	Enabled         bool            `yaml:"enabled"`
	BankSupport     bool            `yaml:"bank_support"`
	GroupAccounts   bool            `yaml:"group_accounts"`
	StartingBalance decimal.Decimal `yaml:"starting_balance"`
	Currency        CurrencyConfig  `yaml:"currency"`
}

type CurrencyConfig struct {
	Singular         string `yaml:"singular"`
	Plural           string `yaml:"plural"`
	Symbol           string `yaml:"symbol"`
	FractionalDigits int    `yaml:"fractional_digits"` // -1 表示不做四捨五入
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"` // key 前綴，空字串時使用 "economy"
}

type MySQLConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	DBName       string `yaml:"dbname"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	AutoMigrate  bool   `yaml:"auto_migrate"`
}

// Load 讀取設定檔
// 優先讀取 config/config.yaml，然後使用環境變數覆蓋
func Load(configPath ...string) (*Config, error) {
	// 1. 決定設定檔路徑
	dir := "./config"
	if len(configPath) > 0 {
		dir = configPath[0]
	}
	if val := os.Getenv(EnvConfigDir); val != "" && len(configPath) == 0 {
		dir = val
	}
	fullPath := filepath.Join(dir, "config.yaml")

	// 2. 讀取 YAML 檔案
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at %s: %w", fullPath, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse yaml at %s: %w", fullPath, err)
	}

	// 3. 環境變數覆蓋
	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse 以預設值為底解析 YAML，未出現的欄位保留預設值
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default 本機開發用的預設值: 記憶體後端、全部功能開啟
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:              "economyd",
			Env:               "local",
			StatusIntervalSec: 60,
		},
		Economy: EconomyConfig{
			Backend:       BackendMemory,
			Name:          "economy",
			Enabled:       true,
			BankSupport:   true,
			GroupAccounts: true,
			Currency: CurrencyConfig{
				Singular:         "coin",
				Plural:           "coins",
				FractionalDigits: 2,
			},
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "economy",
		},
		MySQL: MySQLConfig{
			Host:        "localhost",
			Port:        3306,
			DBName:      "economy",
			AutoMigrate: true,
		},
	}
}

// Validate 檢查無法在執行期修正的設定錯誤
func (c *Config) Validate() error {
	switch c.Economy.Backend {
	case BackendMemory, BackendRedis, BackendMySQL:
	default:
		return fmt.Errorf("unknown economy backend %q", c.Economy.Backend)
	}
	if c.Economy.Currency.FractionalDigits < -1 {
		return fmt.Errorf("invalid fractional_digits %d", c.Economy.Currency.FractionalDigits)
	}
	if c.Economy.StartingBalance.IsNegative() {
		return fmt.Errorf("starting_balance cannot be negative: %s", c.Economy.StartingBalance)
	}
	return nil
}

func overrideWithEnv(cfg *Config) {
	// App
	if env := os.Getenv(EnvAppEnv); env != "" {
		cfg.App.Env = env
	}

	// Economy
	if val := os.Getenv(EnvEconomyBackend); val != "" {
		cfg.Economy.Backend = val
	}
	if val := os.Getenv(EnvEconomyEnabled); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Economy.Enabled = b
		}
	}
	if val := os.Getenv(EnvEconomyStartingBalance); val != "" {
		if d, err := decimal.NewFromString(val); err == nil {
			cfg.Economy.StartingBalance = d
		}
	}

	// MySQL
	if val := os.Getenv(EnvMySQLHost); val != "" {
		cfg.MySQL.Host = val
	}
	if val := os.Getenv(EnvMySQLPassword); val != "" {
		cfg.MySQL.Password = val
	}
	if val := os.Getenv(EnvMySQLUser); val != "" {
		cfg.MySQL.User = val
	}
	if val := os.Getenv(EnvMySQLDB); val != "" {
		cfg.MySQL.DBName = val
	}
	if val := os.Getenv(EnvMySQLPort); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.MySQL.Port = p
		}
	}

	// Redis
	if val := os.Getenv(EnvRedisAddr); val != "" {
		cfg.Redis.Addr = val
	}
	if val := os.Getenv(EnvRedisPassword); val != "" {
		cfg.Redis.Password = val
	}
}
