//go:build unit

package identity_test

import (
	"testing"

	"pix-funnel/internal/domain/identity"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name           string
		raw            string
		expected       identity.Key
		wantRecognized bool
	}{
		{name: "already canonical", raw: "5511988887777", expected: "5511988887777", wantRecognized: true},
		{name: "punctuated international", raw: "+55 (11) 98888-7777", expected: "5511988887777", wantRecognized: true},
		{name: "national with ninth digit", raw: "11988887777", expected: "5511988887777", wantRecognized: true},
		{name: "international missing ninth digit", raw: "551188887777", expected: "5511988887777", wantRecognized: true},
		{name: "national missing ninth digit", raw: "(11) 8888-7777", expected: "5511988887777", wantRecognized: true},
		{name: "whatsapp transport suffix", raw: "5511988887777@s.whatsapp.net", expected: "5511988887777", wantRecognized: true},
		{name: "device suffix", raw: "5511988887777:17@s.whatsapp.net", expected: "5511988887777", wantRecognized: true},
		{name: "trunk zero", raw: "011988887777", expected: "5511988887777", wantRecognized: true},
		{name: "landline without mobile range is unrecognized", raw: "551133334444", expected: "551133334444", wantRecognized: false},
		{name: "foreign number is unrecognized", raw: "+1 (415) 555-0100", expected: "14155550100", wantRecognized: false},
		{name: "empty input", raw: "", expected: "", wantRecognized: false},
		{name: "letters only", raw: "abc", expected: "", wantRecognized: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, recognized := identity.Normalize(tc.raw)
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, tc.wantRecognized, recognized)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"5511988887777",
		"11988887777",
		"+55 11 98888-7777",
		"551188887777",
		"1188887777",
		"551133334444",
		"+1 415 555 0100",
		"000",
		"12",
		"5521977776666@c.us",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			once, _ := identity.Normalize(raw)
			twice, _ := identity.Normalize(string(once))
			assert.Equal(t, once, twice)
		})
	}
}

func TestNormalize_SameCustomerSameKey(t *testing.T) {
	variants := []string{"5511988887777", "11988887777", "+55 11 98888-7777", "551188887777", "5511988887777@s.whatsapp.net"}

	expected := identity.MustNormalize(variants[0])
	for _, v := range variants[1:] {
		assert.Equal(t, expected, identity.MustNormalize(v), "variant %q", v)
	}
}
