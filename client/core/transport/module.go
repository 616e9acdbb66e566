package transport

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"

	logpkg "github.com/memecoins/memecoins-sdk/internal/core/infrastructure/log"
	rpcconfig "github.com/memecoins/memecoins-sdk/internal/config/rpc"
	logInterface "github.com/memecoins/memecoins-sdk/pkg/interfaces/infrastructure/log"
)

// ModuleParams 定义传输模块的依赖参数
type ModuleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Options   *rpcconfig.RPCOptions
	Logger    logInterface.Logger `optional:"true"`
}

// ModuleOutput 定义传输模块的输出结构
type ModuleOutput struct {
	fx.Out

	Client   *Client
	Provider Provider
}

// Module 返回传输模块
func Module() fx.Option {
	return fx.Module("transport",
		fx.Provide(ProvideClient),
	)
}

// ProvideClient 连接配置的节点，并在应用停止时关闭连接
func ProvideClient(params ModuleParams) (ModuleOutput, error) {
	config := ClientConfigFromOptions(params.Options)
	logger := logpkg.NewModuleLogger(params.Logger, "transport")

	budget := config.Timeout + (config.Timeout+config.RetryBackoff)*time.Duration(config.RetryAttempts)
	ctx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()

	client, err := Connect(ctx, params.Options.URL, config, logger)
	if err != nil {
		return ModuleOutput{}, fmt.Errorf("连接节点失败: %w", err)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			client.Close()
			return nil
		},
	})

	return ModuleOutput{Client: client, Provider: client}, nil
}
