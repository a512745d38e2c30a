package normalization

import (
  "strings"
)

func ParseInputString(input string) string {
  normalized := strings.ToLower(strings.TrimSpace(input))
  return normalized
}

// TrimInputString keeps the caller's casing. Post bodies, journal titles and
// anonymous names are case-sensitive, only emails get lowercased.
func TrimInputString(input string) string {
  return strings.TrimSpace(input)
}
