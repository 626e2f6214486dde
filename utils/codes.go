package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"os"
	"strings"
	"time"
)

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EnvOrDefault returns the ENV value or the fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateSecureToken returns a hex token (length = bytes of entropy).
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateReferenceCode returns an A-Z0-9 code such as "BK-4D93KF2A".
// Uses crypto/rand with math/big to avoid modulo bias.
func GenerateReferenceCode(prefix string, n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[num.Int64()])
	}
	if prefix == "" {
		return sb.String(), nil
	}
	return prefix + "-" + sb.String(), nil
}

// PtrTime returns a pointer to t.
func PtrTime(t time.Time) *time.Time { return &t }

// DateOnly truncates t to midnight UTC. Booking dates compare at day
// granularity, never time-of-day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
