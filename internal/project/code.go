package project

import (
	"regexp"
	"strings"
)

// codePattern is the one place the project-code suffix is defined:
// three uppercase letters and three digits, parenthesized, at the end
// of a card name.
var codePattern = regexp.MustCompile(`\(([A-Z]{3}[0-9]{3})\)$`)

// SentinelCode marks the template/example card kept on the board as a
// placeholder. It is never a real project and is excluded from reports.
const SentinelCode = "XXX000"

// ParseCode extracts the project code from a card's display name.
// For "Puente X (RSA001)" it returns ("RSA001", "Puente X"); a name
// without the trailing pattern yields ("", name unchanged).
func ParseCode(name string) (code, residual string) {
	trimmed := strings.TrimSpace(name)
	m := codePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", name
	}
	return m[1], strings.TrimSpace(strings.TrimSuffix(trimmed, m[0]))
}

// IsProject reports whether a card name carries a real project code,
// i.e. it parses and is not the template sentinel.
func IsProject(name string) bool {
	code, _ := ParseCode(name)
	return code != "" && code != SentinelCode
}
