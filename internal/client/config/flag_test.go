package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-exchange", "http://x:9090/exchange", "-spin", "10"}, expectPanic: false,
			expected: &Config{ExchangeEndpoint: "http://x:9090/exchange", RouletteSpinDelay: 10 * time.Second}},
		{name: "Test2 session file", args: []string{"cmd", "-s", "/tmp/s.db"}, expectPanic: false,
			expected: &Config{SessionFile: "/tmp/s.db"}},
		{name: "Test3 incorrect spin delay", args: []string{"cmd", "-spin", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
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
