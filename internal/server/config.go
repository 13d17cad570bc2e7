package server

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/propwise/propwise/internal/config"
	"github.com/propwise/propwise/pkg/constants"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address      string
	maxBodyBytes int64
}

// FromConfiguration normalizes the server section of the application config,
// filling in defaults for anything unset.
func FromConfiguration(sc config.ServerConfig) (*Config, error) {
	cfg := &Config{
		Address:      constants.DefaultServerAddress,
		maxBodyBytes: constants.DefaultMaxBodySizeBytes,
	}

	if sc.Address != "" {
		cfg.Address = sc.Address
	}

	if size := strings.TrimSpace(sc.MaxBodySize); size != "" {
		bytes, err := ParseSize(size)
		if err != nil {
			return nil, err
		}
		if bytes > 0 {
			cfg.maxBodyBytes = bytes
		}
	}
	return cfg, nil
}

// MaxBodyBytes returns the configured request body limit in bytes.
func (c *Config) MaxBodyBytes() int64 {
	return c.maxBodyBytes
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	case "G", "GB":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
