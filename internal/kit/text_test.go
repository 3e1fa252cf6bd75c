package kit

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopSlash(t *testing.T) {
	assert.Equal(t, "https://example.com", PopSlash("https://example.com/"))
	assert.Equal(t, "https://example.com", PopSlash("https://example.com"))
	assert.Equal(t, "", PopSlash(""))
}

func TestRelativeURL(t *testing.T) {
	assert.Equal(t, "/path/to/the/page", RelativeURL("https://example.com/path/to/the/page"))
	assert.Equal(t, "/path/to/the/page", RelativeURL("/path/to/the/page"))
	assert.Equal(t, "/docs", RelativeURL("example.com/docs/"))
}

func TestRegexpEscape(t *testing.T) {
	for _, s := range []string{".", "*", "+", "\\", "-", "?", "^", "$", "{", "}", "(", ")", "|", "[", "]"} {
		assert.Equal(t, `\`+s, RegexpEscape(s))
	}

	literal := "a.b*(c)"
	re := regexp.MustCompile("^" + RegexpEscape(literal) + "$")
	assert.True(t, re.MatchString(literal))
	assert.False(t, re.MatchString("aXb*(c)"))
}

func TestFilterPhone(t *testing.T) {
	assert.Equal(t, "380123456789", FilterPhone("+38 (012) 345-6789", DefaultCountryCode))
	assert.Equal(t, "380123456789", FilterPhone("(012) 345 67 89", "38"))
	assert.Equal(t, "15551234567", FilterPhone("+1 555-123-4567", "1"))
}

func TestStringReplace(t *testing.T) {
	got := StringReplace("The quick brown fox jumped to snow", map[string]string{
		"quick": "slow",
		"brown": "black",
		"fox":   "dog",
	})
	assert.Equal(t, "The slow black dog jumped to snow", got)
}

func TestStringReplacePrefersLongestKey(t *testing.T) {
	got := StringReplace("{m} {mines}", map[string]string{
		"{m}":     "x",
		"{mines}": "15",
	})
	assert.Equal(t, "x 15", got)
}

func TestStringReplaceIsSinglePass(t *testing.T) {
	got := StringReplace("a b", map[string]string{"a": "b", "b": "a"})
	assert.Equal(t, "b a", got)
}

func TestStringReplaceEmptySearch(t *testing.T) {
	assert.Equal(t, "unchanged", StringReplace("unchanged", nil))
	assert.Equal(t, "unchanged", StringReplace("unchanged", map[string]string{"": "x"}))
}
