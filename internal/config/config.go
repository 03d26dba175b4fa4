package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Defaults used when the corresponding flag is not set.
const (
	DefaultNodeID      = "n1"
	DefaultListenAddr  = ":50051"
	DefaultMetricsAddr = ":9090"
)

// Config holds the node configuration.
type Config struct {
	NodeID      string
	ListenAddr  string
	MetricsAddr string // empty disables the metrics endpoint
}

// Default returns a configuration with the default node ID and addresses.
func Default() Config {
	return Config{
		NodeID:      DefaultNodeID,
		ListenAddr:  DefaultListenAddr,
		MetricsAddr: DefaultMetricsAddr,
	}
}

// ValidateAddr checks that addr is in "host:port" form with a numeric port.
// The host may be empty, e.g. ":50051".
func ValidateAddr(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("address cannot be empty")
	}

	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid address format: %s (expected host:port)", addr)
	}

	p, err := strconv.Atoi(port)
	if err != nil || p < 0 || p > 65535 {
		return fmt.Errorf("invalid port in address: %s", addr)
	}
	return nil
}

// Validate checks the configuration before the node starts.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.NodeID) == "" {
		return fmt.Errorf("node ID cannot be empty")
	}
	if err := ValidateAddr(c.ListenAddr); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	if c.MetricsAddr != "" {
		if err := ValidateAddr(c.MetricsAddr); err != nil {
			return fmt.Errorf("metrics-listen: %w", err)
		}
		if c.MetricsAddr == c.ListenAddr {
			return fmt.Errorf("metrics-listen and listen must differ: %s", c.ListenAddr)
		}
	}
	return nil
}
