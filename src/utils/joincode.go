package utils

import (
	"crypto/rand"
	"math/big"
	"regexp"
)

var joinCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// GenerateJoinCode returns a random 6-digit numeric string (100000-999999).
func GenerateJoinCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return ""
	}
	return big.NewInt(0).Add(n, big.NewInt(100000)).String()
}

// IsJoinCode reports whether s has the shape of a join code.
func IsJoinCode(s string) bool {
	return joinCodePattern.MatchString(s)
}
