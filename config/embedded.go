// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Parses and caches the embedded default configuration.

package config

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/framegrace/texeldock/defaults"
)

var (
	embeddedSystemOnce sync.Once
	embeddedSystem     Config
	embeddedSystemErr  error
)

func embeddedSystemDefaults() (Config, error) {
	embeddedSystemOnce.Do(func() {
		data, err := defaults.SystemConfig()
		if err != nil {
			embeddedSystemErr = err
			return
		}
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			embeddedSystemErr = err
			return
		}
		embeddedSystem = cfg
	})
	return embeddedSystem, embeddedSystemErr
}

// defaultSystemConfig returns a fresh copy of the embedded defaults, or an
// empty config when they cannot be parsed.
func defaultSystemConfig() Config {
	cfg, err := embeddedSystemDefaults()
	if err != nil {
		log.Printf("Config: Embedded defaults unusable: %v", err)
		return make(Config)
	}
	if cfg == nil {
		return make(Config)
	}
	return Clone(cfg)
}
