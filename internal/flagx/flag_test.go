package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		allowed   []string
		boolFlags []string
		want      []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-a", "localhost"},
			allowed: []string{"-c", "--config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "long flag with equals",
			args:    []string{"--config=alt.json", "-a", "localhost"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "single and double dash are the same flag",
			args:    []string{"--d", "dsn", "-config=x.json"},
			allowed: []string{"-d", "--config"},
			want:    []string{"--d", "dsn", "-config=x.json"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end is kept",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "flag followed by another flag",
			args:    []string{"-c", "-a", "addr"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:      "bool flag does not swallow next argument",
			args:      []string{"-strict", "stray", "-a", ":80"},
			allowed:   []string{"-a"},
			boolFlags: []string{"-strict"},
			want:      []string{"-strict", "-a", ":80"},
		},
		{
			name:      "bool flag with explicit value",
			args:      []string{"-strict=false"},
			boolFlags: []string{"-strict"},
			want:      []string{"-strict=false"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed, tt.boolFlags...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "a.json"}, "a.json"},
		{"long equals", []string{"-a", ":80", "--config=b.json"}, "b.json"},
		{"last wins", []string{"-c", "a.json", "-config", "b.json"}, "b.json"},
		{"absent", []string{"-a", ":80"}, ""},
		{"missing value", []string{"-c"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
