package config

// Environment Variable Keys
const (
	// EnvConfigDir 定義 config.yaml 所在目錄
	EnvConfigDir = "CONFIG_DIR"

	// EnvAppEnv 定義應用程式執行環境 (local, dev, prod)
	EnvAppEnv = "APP_ENV"

	// EnvEconomyBackend 定義經濟後端 (memory, redis, mysql)
	EnvEconomyBackend = "ECONOMY_BACKEND"

	// EnvEconomyEnabled 定義經濟是否啟用 (strconv.ParseBool 格式)
	EnvEconomyEnabled = "ECONOMY_ENABLED"

	// EnvEconomyStartingBalance 定義新帳戶的初始餘額
	EnvEconomyStartingBalance = "ECONOMY_STARTING_BALANCE"

	// EnvRedisAddr 定義 Redis 服務地址 (host:port)
	EnvRedisAddr = "REDIS_ADDR"

	// EnvRedisPassword 定義 Redis 密碼
	EnvRedisPassword = "REDIS_PASSWORD"

	// EnvMySQLHost 定義 MySQL 主機
	EnvMySQLHost = "MYSQL_HOST"

	// EnvMySQLUser 定義 MySQL 使用者
	EnvMySQLUser = "MYSQL_USER"

	// EnvMySQLDB 定義 MySQL 資料庫名稱
	EnvMySQLDB = "MYSQL_DB"

	// EnvMySQLPort 定義 MySQL Port
	EnvMySQLPort = "MYSQL_PORT"

	// EnvMySQLPassword 定義 MySQL 密碼
	EnvMySQLPassword = "MYSQL_PASSWORD"
)
