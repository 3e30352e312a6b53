package keys

import (
	"math/rand"
	"regexp"
	"strings"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength matches the six-character codes participants share verbally.
const CodeLength = 6

var joinCodeRegex = regexp.MustCompile("^[A-Z0-9]{6}$")

// NewJoinCode creates a short alphanumeric code for joining sessions.
func NewJoinCode() string {
	b := make([]byte, CodeLength)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}

// NormalizeJoinCode canonicalizes user-entered codes before lookup.
func NormalizeJoinCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidJoinCode reports whether s is a normalized, well-formed code.
func ValidJoinCode(s string) bool {
	return joinCodeRegex.MatchString(s)
}
