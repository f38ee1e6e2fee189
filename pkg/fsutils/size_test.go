package fsutils

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestGetSizeShortText(t *testing.T) {
	tests := []struct {
		size     uint64
		expected string
	}{
		{0, "0B"},
		{500, "500B"},
		{1023, "1023B"},
		{1024, "1KB"},
		{1025, "1KB"},
		{1535, "1KB"},
		{1536, "2KB"},
		{2000, "2KB"},
		{1024 * 1024, "1MB"},
		{1024*1024 - 1, "1MB"},
		{1024 * 1024 * 1024, "1GB"},
		{1024 * 1024 * 1024 * 1024, "1TB"},
		{1024*1024 + 512*1024 - 1, "1MB"},
		{1024*1024 + 512*1024, "2MB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1024TB"},
		{1<<64 - 1, "16777216TB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSizeShortText(tt.size))
		})
	}
}
