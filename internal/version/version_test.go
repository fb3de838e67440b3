package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"v1.2.3", "1.2.3"},
		{" v0.4.0-rc.1 ", "0.4.0-rc.1"},
		{"1.0.0+build.7", "1.0.0+build.7"},
		{"dev", Fallback},
		{"", Fallback},
		{"1.2", Fallback},
		{"not-a-version", Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestInfo(t *testing.T) {
	info := New("v1.4.0", "abc1234", "")

	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "unknown", info.Date)
	assert.Equal(t, "1.4.0 (commit: abc1234, built: unknown)", info.String())
}
