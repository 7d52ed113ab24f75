package config

import (
	"errors"
	"flag"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// ServerOrigin holds the scheme, host and port of the CMS origin.
// It implements the flag.Value interface.
type ServerOrigin struct {
	Scheme string
	Host   string
	Port   int
}

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a CMS origin in format [scheme://]host[:port]
//	-d database DSN
//	-c/-config json file path with configs
//	-storage-key secret sealing the stored token
//	-export-dir CSV export directory
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-stats-refresh admin stats refresh interval (e.g., "30s")
func ParseFlags() (*StructuredConfig, error) {
	var origin ServerOrigin
	var databaseDSN string
	var jsonConfigPath string
	var storageKey string
	var exportDir string
	var requestTimeout time.Duration
	var statsRefresh time.Duration

	flag.Var(&origin, "a", "CMS origin [scheme://]host[:port]")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&storageKey, "storage-key", "", "Secret used to seal the stored token")
	flag.StringVar(&exportDir, "export-dir", "", "Directory for CSV exports")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&statsRefresh, "stats-refresh", 0, "Admin stats refresh interval (e.g., 30s)")

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			StorageKey: storageKey,
			ExportDir:  exportDir,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    origin.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			StatsRefreshInterval: statsRefresh,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the origin as scheme://host[:port], or "" when unset.
func (o *ServerOrigin) String() string {
	if o.Host == "" && o.Port == 0 {
		return ""
	}

	scheme := o.Scheme
	if scheme == "" {
		scheme = "http"
	}
	if o.Port == 0 {
		return scheme + "://" + o.Host
	}

	return scheme + "://" + net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

// Set parses an origin of form [scheme://]host[:port]. The scheme must be
// http or https, the port positive and the host either "localhost", an IP
// address or a DNS name.
func (o *ServerOrigin) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("empty origin")
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("origin scheme must be http or https")
	}

	host := u.Hostname()
	if host == "" {
		return errors.New("need origin in a form `[scheme://]host[:port]`")
	}
	if strings.ContainsAny(host, " _") {
		return errors.New("incorrect host provided")
	}

	port := 0
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return err
		}
		if port < 1 || port > 65535 {
			return errors.New("port number is an integer between 1 and 65535")
		}
	}

	o.Scheme = u.Scheme
	o.Host = host
	o.Port = port
	return nil
}
