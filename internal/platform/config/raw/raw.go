// Package raw reads environment settings before the logger exists.
// The logger builds its own options from here, so nothing in this package logs
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf reads env vars under a prefix such as "LOG_"
type Conf struct{ prefix string }

// New returns a Conf without prefix
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) value(key string) string { return strings.TrimSpace(os.Getenv(c.prefix + key)) }

// Get returns the trimmed value or def when unset or blank
func (c Conf) Get(key, def string) string {
	if v := c.value(key); v != "" {
		return v
	}
	return def
}

// GetBool treats 1, true and yes (any case) as true and anything else as false
func (c Conf) GetBool(key string, def bool) bool {
	switch v := strings.ToLower(c.value(key)); v {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// GetInt accepts unsigned decimal digits only; signs and junk fall back to def
func (c Conf) GetInt(key string, def int) int {
	v := c.value(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 31)
	if err != nil {
		return def
	}
	return int(n)
}
