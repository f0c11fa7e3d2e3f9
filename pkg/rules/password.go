package rules

import (
	"strings"
	"unicode/utf8"
)

const PasswordMinLength = 8

// PasswordSpecialChars is the set of characters accepted by the
// special-character condition.
const PasswordSpecialChars = `!@#$%^&*(),.?":{}|<>`

// Condition names one of the password sub-rules shown in the checklist.
type Condition string

const (
	ConditionMinLength  Condition = "min"
	ConditionFirstUpper Condition = "first"
	ConditionHasLower   Condition = "lower"
	ConditionHasDigit   Condition = "num"
	ConditionHasSpecial Condition = "spec"
)

// Conditions returns the checklist conditions in display order.
func Conditions() []Condition {
	return []Condition{
		ConditionMinLength,
		ConditionFirstUpper,
		ConditionHasLower,
		ConditionHasDigit,
		ConditionHasSpecial,
	}
}

// PasswordConditions reports every sub-rule independently.
type PasswordConditions struct {
	MinLength  bool `json:"min"`
	FirstUpper bool `json:"first"`
	HasLower   bool `json:"lower"`
	HasDigit   bool `json:"num"`
	HasSpecial bool `json:"spec"`
}

// Met reports whether condition c holds.
func (p PasswordConditions) Met(c Condition) bool {
	switch c {
	case ConditionMinLength:
		return p.MinLength
	case ConditionFirstUpper:
		return p.FirstUpper
	case ConditionHasLower:
		return p.HasLower
	case ConditionHasDigit:
		return p.HasDigit
	case ConditionHasSpecial:
		return p.HasSpecial
	}
	return false
}

// All reports whether every condition holds.
func (p PasswordConditions) All() bool {
	return p.MinLength && p.FirstUpper && p.HasLower && p.HasDigit && p.HasSpecial
}

// EvaluatePassword computes all five conditions for value.
func EvaluatePassword(value string) PasswordConditions {
	conds := PasswordConditions{
		MinLength:  utf8.RuneCountInString(value) >= PasswordMinLength,
		FirstUpper: value != "" && value[0] >= 'A' && value[0] <= 'Z',
		HasSpecial: strings.ContainsAny(value, PasswordSpecialChars),
	}
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case c >= 'a' && c <= 'z':
			conds.HasLower = true
		case c >= '0' && c <= '9':
			conds.HasDigit = true
		}
	}
	return conds
}

// ValidatePassword passes only when every condition holds. The value is not
// trimmed.
func ValidatePassword(value string) Result {
	if EvaluatePassword(value).All() {
		return pass()
	}
	return fail(CodePasswordWeak)
}
