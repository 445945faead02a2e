package common

import (
	"strings"

	"github.com/mvdan/xurls"
)

// IsHTTPURL returns true if `str` consists of a single absolute http(s) URL and nothing else.
func IsHTTPURL(str string) bool {
	if str == "" || xurls.Strict.FindString(str) != str {
		return false
	}
	lower := strings.ToLower(str)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
