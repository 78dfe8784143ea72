package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// MaxTxRetries 樂觀交易 (WATCH/MULTI) 因衝突失敗時的最大重試次數
const MaxTxRetries = 256

// ErrTxConflict 樂觀交易重試次數耗盡
var ErrTxConflict = errors.New("redis transaction kept conflicting")

// Config 定義 Redis 連線配置
type Config struct {
	Addr     string // Redis 伺服器地址 (e.g., "localhost:6379")
	Password string // Redis 密碼 (若無則留空)
	DB       int    // 使用的資料庫編號
}

// Client 封裝 redis.Client 以提供更簡易的介面
type Client struct {
	rdb *redis.Client
}

// NewClient 建立並回傳一個新的 Redis 客戶端實例
//
// 參數:
//
//	cfg: Config - Redis 連線配置資訊
//
// 回傳值:
//
//	*Client: 封裝後的 Redis 客戶端實例
//	error: 若連線失敗則回傳錯誤
func NewClient(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 測試連線
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Close 關閉 Redis 連線
func (c *Client) Close() error {
	return c.rdb.Close()
}

// IsNil 判斷錯誤是否為鍵不存在
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

// Get 讀取字串值，鍵不存在時回傳的錯誤可用 IsNil 判斷
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}

// Exists 檢查鍵是否存在
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// HGet 讀取雜湊欄位，欄位或鍵不存在時的錯誤可用 IsNil 判斷
func (c *Client) HGet(ctx context.Context, key, field string) (string, error) {
	return c.rdb.HGet(ctx, key, field).Result()
}

// HMGet 讀取多個雜湊欄位，不存在的欄位對應 nil
func (c *Client) HMGet(ctx context.Context, key string, fields ...string) ([]any, error) {
	return c.rdb.HMGet(ctx, key, fields...).Result()
}

// SIsMember 檢查集合是否包含成員
func (c *Client) SIsMember(ctx context.Context, key string, member any) (bool, error) {
	return c.rdb.SIsMember(ctx, key, member).Result()
}

// SMembers 取得集合所有成員
func (c *Client) SMembers(ctx context.Context, key string) ([]string, error) {
	return c.rdb.SMembers(ctx, key).Result()
}

// Atomic 以 WATCH/MULTI 樂觀交易執行 fn。
// fn 內應先透過 tx 讀取，再用 tx.TxPipelined 寫入；
// 被監看的鍵在期間被修改時整個 fn 會重新執行，最多 MaxTxRetries 次。
//
// 參數:
//
//	ctx: context.Context - 上下文
//	fn: func(*redis.Tx) error - 交易內容，可能被執行多次，必須可重入
//	keys: ...string - 要監看的鍵
//
// 回傳值:
//
//	error: fn 的錯誤、Redis 系統錯誤，或重試耗盡時的 ErrTxConflict
func (c *Client) Atomic(ctx context.Context, fn func(tx *redis.Tx) error, keys ...string) error {
	for i := 0; i < MaxTxRetries; i++ {
		err := c.rdb.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return ErrTxConflict
}
