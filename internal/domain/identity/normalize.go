// Package identity derives the canonical customer key from phone-like input.
// Every lookup, storage key and outbound payload must use the Key produced here.
package identity

import (
	"strings"
)

// Key is a canonical customer identity: country code, area code and subscriber
// number as a single digit string, e.g. "5511988887777".
type Key string

const (
	CountryCode     = "55"
	CanonicalLength = 13
	MobilePrefix    = '9'

	nationalLength = CanonicalLength - len(CountryCode) // area (2) + subscriber (9)
	areaLength     = 2
)

func (k Key) String() string { return string(k) }

func (k Key) IsZero() bool { return k == "" }

// Normalize canonicalizes raw into a Key. The second result is false when the
// input did not match any known Brazilian format; the cleaned digits are still
// returned so the caller can proceed and flag the event for review.
func Normalize(raw string) (Key, bool) {
	digits := clean(raw)

	switch {
	case len(digits) == CanonicalLength && strings.HasPrefix(digits, CountryCode):
		return Key(digits), true

	case len(digits) == CanonicalLength-1 && strings.HasPrefix(digits, CountryCode):
		national := digits[len(CountryCode):]
		if isLegacyMobile(national) {
			return Key(CountryCode + insertMobilePrefix(national)), true
		}

	case len(digits) == nationalLength && digits[areaLength] == MobilePrefix:
		return Key(CountryCode + digits), true

	case len(digits) == nationalLength-1 && isLegacyMobile(digits):
		return Key(CountryCode + insertMobilePrefix(digits)), true
	}

	return Key(digits), false
}

// MustNormalize is Normalize without the recognition flag.
func MustNormalize(raw string) Key {
	k, _ := Normalize(raw)
	return k
}

// clean drops the messaging transport suffix ("@s.whatsapp.net", "@c.us"),
// a ":device" suffix, every non-digit and leading trunk zeros.
func clean(raw string) string {
	if i := strings.IndexByte(raw, '@'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		raw = raw[:i]
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return strings.TrimLeft(b.String(), "0")
}

// isLegacyMobile reports whether national is area + 8-digit subscriber whose
// leading digit falls in the mobile range (6-9), i.e. a mobile number written
// without the ninth digit.
func isLegacyMobile(national string) bool {
	if len(national) != nationalLength-1 {
		return false
	}
	lead := national[areaLength]
	return lead >= '6' && lead <= '9'
}

func insertMobilePrefix(national string) string {
	return national[:areaLength] + string(MobilePrefix) + national[areaLength:]
}
