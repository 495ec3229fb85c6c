package validation

import "strings"

const passwordMinLength = 8

// commonPasswords is a short deny-list of the most frequently leaked
// passwords. Matching is case-insensitive on the trimmed value.
var commonPasswords = map[string]struct{}{
	"password":   {},
	"password1":  {},
	"password123": {},
	"12345678":   {},
	"123456789":  {},
	"1234567890": {},
	"qwerty123":  {},
	"qwertyuiop": {},
	"iloveyou":   {},
	"letmein1":   {},
	"welcome1":   {},
	"admin123":   {},
	"sunshine":   {},
	"princess":   {},
	"football":   {},
	"baseball":   {},
	"dragon123":  {},
	"monkey123":  {},
	"abc12345":   {},
	"changeme":   {},
}

// Password applies the account password policy: minimum length, not entirely
// numeric, not a common password, and not too similar to the user's own
// identifying attributes. Failures accumulate under the "password" field.
func Password(raw string, attributes []string, fe FieldErrors) {
	if raw == "" {
		fe.Add("password", "Password cannot be empty.")
		return
	}
	if len(raw) < passwordMinLength {
		fe.Add("password", "This password is too short. It must contain at least 8 characters.")
	}
	if isAllNumeric(raw) {
		fe.Add("password", "This password is entirely numeric.")
	}
	if _, ok := commonPasswords[strings.ToLower(raw)]; ok {
		fe.Add("password", "This password is too common.")
	}
	if similarToAttribute(raw, attributes) {
		fe.Add("password", "The password is too similar to your personal information.")
	}
}

func isAllNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// similarToAttribute reports whether the password contains, or is contained
// by, any user attribute (email local part included), compared
// case-insensitively. Attributes shorter than 4 runes are ignored to avoid
// false positives on initials.
func similarToAttribute(password string, attributes []string) bool {
	p := strings.ToLower(password)
	for _, attr := range attributes {
		a := strings.ToLower(strings.TrimSpace(attr))
		if local, _, ok := strings.Cut(a, "@"); ok && len(local) >= 4 {
			if strings.Contains(p, local) || strings.Contains(local, p) {
				return true
			}
		}
		if len(a) < 4 {
			continue
		}
		if strings.Contains(p, a) || strings.Contains(a, p) {
			return true
		}
	}
	return false
}
