package rules

// Code identifies a diagnostic produced by a validator. The zero value means
// the field passed.
type Code string

const (
	CodeOK Code = ""

	CodeNameRequired     Code = "name.required"
	CodeNameInvalidChars Code = "name.invalid_chars"
	CodeNameTooShort     Code = "name.too_short"

	CodeEmailRequired Code = "email.required"
	CodeEmailInvalid  Code = "email.invalid"

	CodePhoneRequired Code = "phone.required"
	CodePhoneInvalid  Code = "phone.invalid"

	CodePasswordWeak Code = "password.weak"

	CodeConfirmRequired Code = "confirm.required"
	CodeConfirmMismatch Code = "confirm.mismatch"
)

var messages = map[Code]string{
	CodeNameRequired:     "Full name is required.",
	CodeNameInvalidChars: "Name must contain only letters and spaces.",
	CodeNameTooShort:     "Name must be at least 2 characters.",
	CodeEmailRequired:    "Email is required.",
	CodeEmailInvalid:     "Please enter a valid email address.",
	CodePhoneRequired:    "Phone number is required.",
	CodePhoneInvalid:     "Phone must be 10 digits and start with 6, 7, 8, or 9.",
	CodePasswordWeak:     "Password must meet all listed conditions.",
	CodeConfirmRequired:  "Please confirm your password.",
	CodeConfirmMismatch:  "Passwords do not match.",
}

// Message returns the human-readable diagnostic for the code. CodeOK and
// unknown codes yield an empty string.
func (c Code) Message() string {
	return messages[c]
}
