package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "http://backend:8000/api", "-t", "30", "-d", "x.db", "-o", "/tmp/dl", "-l", "debug"},
			expected: &Config{BaseURL: "http://backend:8000/api", RequestTimeout: 30 * time.Second, StorageDSN: "x.db", DownloadDir: "/tmp/dl", LogLevel: "debug"}},
		{name: "unknown flags ignored", args: []string{"cmd", "-x", "1", "-a", "http://h/api"},
			expected: &Config{BaseURL: "http://h/api"}},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
