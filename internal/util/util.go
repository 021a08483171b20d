package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileDigest returns the hex SHA256 sum and the size of a file.
func FileDigest(filePath string) (string, int64, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	hash := sha256.New()
	size, err := io.Copy(hash, file)
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to hash file")
	}

	return hex.EncodeToString(hash.Sum(nil)), size, nil
}

// FormatBytes renders an image size for people: 512 B, 1.5 KB, 2.0 MB.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// ShortDigest keeps the first n characters of a digest for display.
func ShortDigest(digest string, n int) string {
	if n <= 0 || len(digest) <= n {
		return digest
	}

	return digest[:n]
}
