package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		description string
		email       string
		valid       bool
	}{
		{"Should accept a plain address", "a@b.com", true},
		{"Should reject a value with no '@'", "abc", false},
		{"Should reject a domain without a dot", "a@b", false},
		{"Should use the domain after the last '@'", "a@b@c.org", true},
		{"Should reject a dot before the '@' only", "a.b@c", false},
		{"Should reject an empty string", "", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, Email(c.email), c.description)
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		description string
		phone       string
		valid       bool
	}{
		{"Should accept digits with dashes", "0412-345-678", true},
		{"Should accept digits with spaces and brackets", "(04) 1234 5678", true},
		{"Should reject a number that is too short", "12345", false},
		{"Should reject letters", "04-12-AB-CD", false},
		{"Should reject an empty string", "", false},
		{"Should reject separators only", "--- ()", false},
		{"Should accept a bare 10 digit number", "0412345678", true},
	}

	for _, c := range cases {
		assert.Equal(t, c.valid, Phone(c.phone), c.description)
	}
}
