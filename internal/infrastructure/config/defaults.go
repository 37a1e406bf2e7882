package config

import "time"

const (
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultDialTimeout       = 3 * time.Second
	DefaultIdleConnTimeout   = 90 * time.Second
	DefaultMaxIdleConns      = 100
	DefaultMaxIdleConnsHost  = 20
	DefaultUserAgent         = "auspex-gateway/1.0"
	DefaultMaxErrorBodyBytes = 64 << 10
)
