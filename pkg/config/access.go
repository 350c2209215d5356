package config

import "sync"

var (
	globalMu     sync.RWMutex
	globalConfig *Config
)

// Initialize sets up the global configuration
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = Default()
	}
	globalMu.Lock()
	globalConfig = cfg
	globalMu.Unlock()
}

// Get returns the current configuration
func Get() *Config {
	globalMu.RLock()
	cfg := globalConfig
	globalMu.RUnlock()
	if cfg == nil {
		Initialize(nil)
		return Get()
	}
	return cfg
}
