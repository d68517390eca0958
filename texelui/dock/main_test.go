// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dock

import (
	"os"
	"testing"
)

// TestMain points the config store at a scratch directory so theme lookups
// never touch the user's real config.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "texeldock-dock")
	if err == nil {
		os.Setenv("XDG_CONFIG_HOME", dir)
	}
	code := m.Run()
	if dir != "" {
		os.RemoveAll(dir)
	}
	os.Exit(code)
}
