package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "separate value",
			args:     []string{"-c", "conf.json", "-x", "other"},
			allowed:  []string{"-c"},
			expected: []string{"-c", "conf.json"},
		},
		{
			name:     "equals form",
			args:     []string{"--config=conf.json", "-x=1"},
			allowed:  []string{"--config"},
			expected: []string{"--config=conf.json"},
		},
		{
			name:     "flag followed by another flag keeps no value",
			args:     []string{"-c", "-x"},
			allowed:  []string{"-c"},
			expected: []string{"-c"},
		},
		{
			name:     "nothing allowed",
			args:     []string{"-a", "b"},
			allowed:  []string{"-c"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd", "-c", "settings.json", "-other", "x"}
	assert.Equal(t, "settings.json", JsonConfigFlags())

	os.Args = []string{"cmd"}
	assert.Equal(t, "", JsonConfigFlags())
}
