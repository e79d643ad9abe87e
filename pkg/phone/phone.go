package phone

import "strings"

const countryCode = "91"

// Normalize maps arbitrary user-entered phone text to the provider-ready
// format (country code, no plus, no separators). It is total: input that
// cannot be resolved to an Indian number is returned cleaned but otherwise
// untouched, and the provider call is left to reject it.
//
// Rules, in order, first match wins:
//  1. empty input is returned unchanged
//  2. all whitespace is stripped
//  3. a single leading "0" is dropped
//  4. "+91..." loses the "+"
//  5. exactly 10 digits gain the "91" prefix
//  6. "91" + exactly 10 digits is already canonical
//  7. any remaining leading "+" is dropped
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}

	s := strings.Join(strings.Fields(raw), "")
	s = strings.TrimPrefix(s, "0")

	if strings.HasPrefix(s, "+"+countryCode) {
		return s[1:]
	}
	if len(s) == 10 && isDigits(s) {
		return countryCode + s
	}
	if len(s) == 12 && strings.HasPrefix(s, countryCode) && isDigits(s) {
		return s
	}
	return strings.TrimPrefix(s, "+")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
