package config

// GatewayConfig is the top level configuration of the staking gateway
type GatewayConfig struct {
	GeneralConfig GeneralConfig
	API           APIConfig
	Database      DatabaseConfig
	WebSocket     WebSocketConfig
	Pairs         []PairConfig
}

// GeneralConfig holds the chain and price feed settings
type GeneralConfig struct {
	ChainID                     string
	NetworkAddress              string
	NativeToken                 string
	FeePerGasUnit               string
	GasLimit                    uint64
	RevealPkGasLimit            uint64
	InjectionWaitInMilliseconds uint64
	PrivateKeyFile              string
	KeystorePassword            string
	MinResultsNum               int
	AutoSendIntervalInSeconds   uint64
	PollIntervalInSeconds       uint64
	Logs                        LogsConfig
}

// LogsConfig holds the file logging settings
type LogsConfig struct {
	LogFileLifeSpanInSec int
	LogFileLifeSpanInMB  int
}

// APIConfig holds the HTTP API settings
type APIConfig struct {
	ListenAddress string
	AdminToken    string
}

// DatabaseConfig holds the persistence settings
type DatabaseConfig struct {
	DSN string
}

// WebSocketConfig holds the websocket hub settings
type WebSocketConfig struct {
	SendBufferSize int
}

// PairConfig holds the settings of one tracked price pair
type PairConfig struct {
	Base                      string
	Quote                     string
	PercentDifferenceToNotify uint32
	Decimals                  uint64
	Exchanges                 []string
}

// ContextFlagsConfig the configuration for flags
type ContextFlagsConfig struct {
	WorkingDir        string
	LogLevel          string
	ConfigurationFile string
	SaveLogFile       bool
	EnableLogName     bool
	DisableAnsiColor  bool
}
