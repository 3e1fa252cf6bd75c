package kit

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultCountryCode is prepended by FilterPhone when callers have no better choice.
const DefaultCountryCode = "38"

var (
	hostPrefix = regexp.MustCompile(`^(https?://)?[^/]+`)
	regexpMeta = regexp.MustCompile(`[.*+\-?^${}()|[\]\\]`)
)

// PopSlash removes a single trailing slash from url.
func PopSlash(url string) string {
	return strings.TrimSuffix(url, "/")
}

// RelativeURL strips scheme and host from url and drops a trailing slash.
// Already relative paths are returned unchanged apart from the slash.
func RelativeURL(url string) string {
	return PopSlash(hostPrefix.ReplaceAllString(url, ""))
}

// RegexpEscape escapes the characters . * + - ? ^ $ { } ( ) | [ ] \ so s can
// be embedded in a regular expression literally.
func RegexpEscape(s string) string {
	return regexpMeta.ReplaceAllStringFunc(s, func(m string) string {
		return `\` + m
	})
}

// FilterPhone strips every non-digit from phone, drops a leading country code
// if present, and prefixes countryCode.
func FilterPhone(phone, countryCode string) string {
	re := regexp.MustCompile(`(^\s*\+?\s*(` + RegexpEscape(countryCode) + `))?[^0-9]*`)
	return countryCode + re.ReplaceAllString(phone, "")
}

// StringReplace replaces every occurrence of each key of search in s with its
// value, in a single pass. When keys overlap the longest one wins.
func StringReplace(s string, search map[string]string) string {
	if len(search) == 0 {
		return s
	}

	keys := make([]string, 0, len(search))
	for k := range search {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return s
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	alternatives := make([]string, len(keys))
	for i, k := range keys {
		alternatives[i] = RegexpEscape(k)
	}
	re := regexp.MustCompile(strings.Join(alternatives, "|"))
	return re.ReplaceAllStringFunc(s, func(m string) string {
		return search[m]
	})
}
