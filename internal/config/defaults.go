package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 10 * time.Second
	defaultAdapterTimeout  = 10 * time.Second
	defaultRetryCount      = 2
	defaultRefreshInterval = 5 * time.Minute
	defaultLogLevel        = "info"
	defaultDBDriver        = "pgx"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: defaultDBDriver,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterTimeout,
			RetryCount:     defaultRetryCount,
		},
		Workers: Workers{
			RefreshInterval: defaultRefreshInterval,
		},
	}
}
