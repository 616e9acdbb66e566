// Package rpc 提供节点 JSON-RPC 连接配置
package rpc

import (
	"time"

	"github.com/memecoins/memecoins-sdk/pkg/types"
)

const (
	defaultTimeout       = 30 * time.Second
	defaultRetryAttempts = 3
	defaultRetryBackoff  = time.Second
)

// RPCOptions 节点连接选项
type RPCOptions struct {
	URL           string        `json:"url"`            // 节点地址
	Timeout       time.Duration `json:"timeout"`        // 单次连接探测超时
	RetryAttempts int           `json:"retry_attempts"` // 连接失败后的重试次数
	RetryBackoff  time.Duration `json:"retry_backoff"`  // 重试间隔
}

// Config RPC 配置实现
type Config struct {
	options *RPCOptions
}

// New 创建 RPC 配置，非法的时长字段保留默认值
func New(userConfig *types.UserRPCConfig) *Config {
	options := &RPCOptions{
		Timeout:       defaultTimeout,
		RetryAttempts: defaultRetryAttempts,
		RetryBackoff:  defaultRetryBackoff,
	}
	if userConfig != nil {
		if userConfig.URL != nil {
			options.URL = *userConfig.URL
		}
		if d, ok := parseDuration(userConfig.Timeout); ok && d > 0 {
			options.Timeout = d
		}
		if userConfig.RetryAttempts != nil && *userConfig.RetryAttempts >= 0 {
			options.RetryAttempts = *userConfig.RetryAttempts
		}
		if d, ok := parseDuration(userConfig.RetryBackoff); ok && d >= 0 {
			options.RetryBackoff = d
		}
	}
	return &Config{options: options}
}

// GetOptions 获取完整的 RPC 选项
func (c *Config) GetOptions() *RPCOptions {
	return c.options
}

func parseDuration(s *string) (time.Duration, bool) {
	if s == nil || *s == "" {
		return 0, false
	}
	d, err := time.ParseDuration(*s)
	if err != nil {
		return 0, false
	}
	return d, true
}
