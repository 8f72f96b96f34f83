package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"seungpyo.lee/PeakTrack/internal/config"
)

var (
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	lowercasePattern = regexp.MustCompile(`[a-z]`)
	digitPattern     = regexp.MustCompile(`[0-9]`)
	specialPattern   = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

type PasswordPolicy struct {
	MinLength          int
	MaxLength          int
	RequireUppercase   bool
	RequireLowercase   bool
	RequireDigit       bool
	RequireSpecialChar bool
}

func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:          6,
		MaxLength:          20,
		RequireUppercase:   true,
		RequireLowercase:   true,
		RequireDigit:       true,
		RequireSpecialChar: true,
	}
}

// NewPasswordPolicy builds a policy from configuration.
func NewPasswordPolicy(conf config.PasswordConfig) PasswordPolicy {
	return PasswordPolicy{
		MinLength:          conf.MinLength,
		MaxLength:          conf.MaxLength,
		RequireUppercase:   conf.RequireUppercase,
		RequireLowercase:   conf.RequireLowercase,
		RequireDigit:       conf.RequireDigit,
		RequireSpecialChar: conf.RequireSpecial,
	}
}

// Validate returns one message per unmet rule. An empty result means the password is acceptable.
func (p PasswordPolicy) Validate(password string) []string {
	var violations []string
	if n := utf8.RuneCountInString(password); n < p.MinLength || n > p.MaxLength {
		violations = append(violations, fmt.Sprintf("Password must be between %d and %d characters", p.MinLength, p.MaxLength))
	}
	if p.RequireUppercase && !uppercasePattern.MatchString(password) {
		violations = append(violations, "Password must contain at least one uppercase letter")
	}
	if p.RequireLowercase && !lowercasePattern.MatchString(password) {
		violations = append(violations, "Password must contain at least one lowercase letter")
	}
	if p.RequireDigit && !digitPattern.MatchString(password) {
		violations = append(violations, "Password must contain at least one digit")
	}
	if p.RequireSpecialChar && !specialPattern.MatchString(password) {
		violations = append(violations, "Password must contain at least one special character")
	}
	return violations
}
