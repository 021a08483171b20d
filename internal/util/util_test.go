package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFileDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soup.png")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	sum, size, err := FileDigest(path)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum)
	assert.Equal(t, int64(3), size)

	_, _, err = FileDigest(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestShortDigest(t *testing.T) {
	assert.Equal(t, "ba7816bf", ShortDigest("ba7816bf8f01", 8))
	assert.Equal(t, "abc", ShortDigest("abc", 8))
	assert.Equal(t, "abc", ShortDigest("abc", 0))
}
