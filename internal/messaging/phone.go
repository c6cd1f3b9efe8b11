package messaging

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "KE"

// NormalizePhone formats a number as E.164 digits without the plus sign, which is
// the form both link schemes expect. Numbers that do not parse keep their digits.
func NormalizePhone(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return digitsOnly(trimmed)
	}

	return strings.TrimPrefix(phonenumbers.Format(number, phonenumbers.E164), "+")
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
