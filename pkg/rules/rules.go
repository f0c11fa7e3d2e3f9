package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field names one of the five inputs under validation.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Fields returns the fields in submit order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldPhone, FieldPassword, FieldConfirmPassword}
}

// ParseField resolves a field from its canonical name.
func ParseField(raw string) (Field, error) {
	trimmed := strings.TrimSpace(raw)
	for _, field := range Fields() {
		if string(field) == trimmed {
			return field, nil
		}
	}
	return "", fmt.Errorf("rules: unknown field %q", raw)
}

const (
	NameMinLength = 2
	NameMaxLength = 50
	PhoneLength   = 10
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z ]+$`)
	emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

// Result is the outcome of one validator run.
type Result struct {
	Valid bool `json:"valid"`
	Code  Code `json:"code,omitempty"`
}

// Message is shorthand for r.Code.Message().
func (r Result) Message() string {
	return r.Code.Message()
}

func pass() Result {
	return Result{Valid: true}
}

func fail(code Code) Result {
	return Result{Code: code}
}

// ValidateName checks the trimmed full name. Failures are reported in a
// fixed order: empty, disallowed characters or over NameMaxLength, too short.
func ValidateName(value string) Result {
	val := strings.TrimSpace(value)
	switch {
	case val == "":
		return fail(CodeNameRequired)
	case !namePattern.MatchString(val), utf8.RuneCountInString(val) > NameMaxLength:
		return fail(CodeNameInvalidChars)
	case utf8.RuneCountInString(val) < NameMinLength:
		return fail(CodeNameTooShort)
	}
	return pass()
}

// ValidateEmail checks the trimmed value has a local@domain.tld shape.
func ValidateEmail(value string) Result {
	val := strings.TrimSpace(value)
	if val == "" {
		return fail(CodeEmailRequired)
	}
	if !emailPattern.MatchString(val) {
		return fail(CodeEmailInvalid)
	}
	return pass()
}

// ValidatePhone checks the trimmed value is ten digits starting with 6-9.
// Callers feeding raw keystrokes should run SanitizePhone first.
func ValidatePhone(value string) Result {
	val := strings.TrimSpace(value)
	if val == "" {
		return fail(CodePhoneRequired)
	}
	if !phonePattern.MatchString(val) {
		return fail(CodePhoneInvalid)
	}
	return pass()
}

// SanitizePhone drops every non-digit and truncates to PhoneLength.
func SanitizePhone(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw) && b.Len() < PhoneLength; i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ValidateConfirmPassword compares the confirmation with the password
// exactly; neither side is trimmed.
func ValidateConfirmPassword(value, password string) Result {
	if value == "" {
		return fail(CodeConfirmRequired)
	}
	if value != password {
		return fail(CodeConfirmMismatch)
	}
	return pass()
}

// Values carries the current value of every field.
type Values struct {
	Name            string `json:"name" yaml:"name"`
	Email           string `json:"email" yaml:"email"`
	Phone           string `json:"phone" yaml:"phone"`
	Password        string `json:"password" yaml:"password"`
	ConfirmPassword string `json:"confirmPassword" yaml:"confirmPassword"`
}

// Get returns the value for field.
func (v Values) Get(field Field) string {
	switch field {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldPhone:
		return v.Phone
	case FieldPassword:
		return v.Password
	case FieldConfirmPassword:
		return v.ConfirmPassword
	}
	return ""
}

// Set stores value for field. Unknown fields are ignored.
func (v *Values) Set(field Field, value string) {
	switch field {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldPhone:
		v.Phone = value
	case FieldPassword:
		v.Password = value
	case FieldConfirmPassword:
		v.ConfirmPassword = value
	}
}

// Validate runs the validator for field against values. The confirmation
// validator reads the password from the same Values.
func Validate(field Field, values Values) Result {
	switch field {
	case FieldName:
		return ValidateName(values.Name)
	case FieldEmail:
		return ValidateEmail(values.Email)
	case FieldPhone:
		return ValidatePhone(values.Phone)
	case FieldPassword:
		return ValidatePassword(values.Password)
	case FieldConfirmPassword:
		return ValidateConfirmPassword(values.ConfirmPassword, values.Password)
	}
	return Result{}
}
