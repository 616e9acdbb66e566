// Package types 定义跨模块共享的配置与数据类型
package types

// AppConfig 用户配置（来自 .env 文件与进程环境变量）
// 只包含实际出现的字段，未设置的字段保持 nil，由各配置模块填充默认值
type AppConfig struct {
	Log      *UserLogConfig      `json:"log,omitempty"`
	RPC      *UserRPCConfig      `json:"rpc,omitempty"`
	Wallet   *UserWalletConfig   `json:"wallet,omitempty"`
	Contract *UserContractConfig `json:"contract,omitempty"`
}

// UserLogConfig 用户日志配置
type UserLogConfig struct {
	Level    *string `json:"level,omitempty"`     // 日志级别：debug, info, warn, error, fatal
	FilePath *string `json:"file_path,omitempty"` // 日志文件路径
}

// UserRPCConfig 用户节点连接配置
type UserRPCConfig struct {
	URL           *string `json:"url,omitempty"`            // 节点 JSON-RPC 地址
	Timeout       *string `json:"timeout,omitempty"`        // 单次探测超时，如 "30s"
	RetryAttempts *int    `json:"retry_attempts,omitempty"` // 连接重试次数
	RetryBackoff  *string `json:"retry_backoff,omitempty"`  // 重试间隔，如 "1s"
}

// UserWalletConfig 用户钱包配置
// 三种来源按 Secret > Keystore > Mnemonic 的优先级选用
type UserWalletConfig struct {
	Secret             *string `json:"secret,omitempty"`              // 十六进制私钥
	Keystore           *string `json:"keystore,omitempty"`            // keystore v3 文件路径
	KeystorePassword   *string `json:"keystore_password,omitempty"`   // keystore 密码
	Mnemonic           *string `json:"mnemonic,omitempty"`            // BIP39 助记词
	MnemonicPassphrase *string `json:"mnemonic_passphrase,omitempty"` // BIP39 附加口令
	DerivationPath     *string `json:"derivation_path,omitempty"`     // BIP44 派生路径
}

// UserContractConfig 用户合约配置
type UserContractConfig struct {
	ArtifactDir *string `json:"artifact_dir,omitempty"` // 合约产物目录
	AssetID     *string `json:"asset_id,omitempty"`     // 手续费资产地址
}

// StringPtr 返回字符串指针，空字符串返回 nil
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// IntPtr 返回整数指针
func IntPtr(i int) *int {
	return &i
}
