// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	localPhone = regexp.MustCompile(`^0\d{8,13}$`)
	intlPhone  = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)
)

func cleanPhone(phone string) string {
	cleaned := strings.TrimSpace(phone)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	return cleaned
}

// ValidatePhone accepts local Indonesian numbers (08xx...) as well as
// international ones with or without the leading +.
func ValidatePhone(phone string) bool {
	cleaned := cleanPhone(phone)
	return localPhone.MatchString(cleaned) || intlPhone.MatchString(cleaned)
}

// NormalizeWhatsApp turns a phone number as typed by a customer into E.164,
// assuming Indonesia for local numbers.
func NormalizeWhatsApp(phone string) string {
	cleaned := cleanPhone(phone)
	switch {
	case strings.HasPrefix(cleaned, "+"):
		return cleaned
	case strings.HasPrefix(cleaned, "0"):
		return "+62" + cleaned[1:]
	default:
		return "+" + cleaned
	}
}
