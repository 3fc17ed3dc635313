package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Alphabet for generated short codes: 62 alphanumeric symbols.
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Length of generated short codes
const shortCodeLength = 6

// GenerateShortCode produces a random fixed-length code. Uniqueness is not
// guaranteed here; the link store's unique index catches collisions and the
// caller retries.
func GenerateShortCode() (string, error) {
	result := make([]byte, shortCodeLength)
	charsetLen := big.NewInt(int64(len(charset)))

	for i := range result {
		idx, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random index: %w", err)
		}
		result[i] = charset[idx.Int64()]
	}

	return string(result), nil
}

// Reserved short codes that cannot be used as custom codes
var reservedCodes = map[string]bool{
	"admin":         true,
	"api":           true,
	"www":           true,
	"auth":          true,
	"login":         true,
	"register":      true,
	"blog":          true,
	"contact":       true,
	"seo":           true,
	"health":        true,
	"robots.txt":    true,
	"sitemap.xml":   true,
	"notifications": true,
	"qrcode":        true,
	"urls":          true,
	"url":           true,
	"stats":         true,
	"analytics":     true,
}

var customCodePattern = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// ValidateCustomShortCode validates a user-supplied short code
func ValidateCustomShortCode(shortCode string) error {
	if len(shortCode) < 3 {
		return fmt.Errorf("short code must be at least 3 characters long")
	}
	if len(shortCode) > 20 {
		return fmt.Errorf("short code must be at most 20 characters long")
	}
	if !customCodePattern.MatchString(shortCode) {
		return fmt.Errorf("short code can only contain letters, numbers, hyphens, and underscores")
	}
	if reservedCodes[strings.ToLower(shortCode)] {
		return fmt.Errorf("short code '%s' is reserved and cannot be used", shortCode)
	}
	return nil
}
