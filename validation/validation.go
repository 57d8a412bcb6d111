package validation

import "strings"

var phoneSeparators = strings.NewReplacer("-", "", " ", "", "(", "", ")", "")

// Email reports whether s looks like an email address i.e. it contains
// an '@' and the part after the last '@' contains a '.'. No attempt is
// made to verify the domain beyond that.
func Email(s string) bool {
	if !strings.Contains(s, "@") {
		return false
	}

	domain := s[strings.LastIndex(s, "@")+1:]
	return strings.Contains(domain, ".")
}

// Phone reports whether s is an acceptable phone number once common
// separators('-', ' ', '(', ')') are stripped out i.e. at least 10
// characters, all decimal digits.
func Phone(s string) bool {
	cleaned := phoneSeparators.Replace(s)
	if len(cleaned) < 10 {
		return false
	}

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
