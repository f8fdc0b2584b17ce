package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx, sqlite3)
//	-f bundle JSON file path
//	-p public record JSON file path
//	-u remote bundle URL
//	-public-url remote public record URL
//	-parallelism concurrent unlock trials
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval remote bundle refresh interval (e.g., "5m")
//	-log-level log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var bundlePath, publicPath string
	var bundleURL, publicURL string
	var parallelism int
	var requestTimeout, refreshInterval time.Duration
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("sealed-vitae", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&bundlePath, "f", "", "Bundle file path")
	fs.StringVar(&publicPath, "p", "", "Public record file path")
	fs.StringVar(&bundleURL, "u", "", "Remote bundle URL")
	fs.StringVar(&publicURL, "public-url", "", "Remote public record URL")
	fs.IntVar(&parallelism, "parallelism", 0, "Concurrent unlock trials")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Remote bundle refresh interval (e.g., 5m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Unlock: Unlock{
			Parallelism: parallelism,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
			Files: Files{
				BundlePath: bundlePath,
				PublicPath: publicPath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BundleURL: bundleURL,
			PublicURL: publicURL,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, bracketing IPv6 hosts. An unset address is "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port where host is empty, "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q must be within 1..65535", ErrInvalidNetAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is neither localhost nor an IP", ErrInvalidNetAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}
