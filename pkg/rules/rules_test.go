package rules_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/rules"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  rules.Result
	}{
		{name: "empty", value: "", want: rules.Result{Code: rules.CodeNameRequired}},
		{name: "whitespace only", value: "   ", want: rules.Result{Code: rules.CodeNameRequired}},
		{name: "digits", value: "Ada 2", want: rules.Result{Code: rules.CodeNameInvalidChars}},
		{name: "single letter", value: "A", want: rules.Result{Code: rules.CodeNameTooShort}},
		{name: "trimmed single letter", value: "  A ", want: rules.Result{Code: rules.CodeNameTooShort}},
		{name: "over max length", value: strings.Repeat("a", 51), want: rules.Result{Code: rules.CodeNameInvalidChars}},
		{name: "max length", value: strings.Repeat("a", 50), want: rules.Result{Valid: true}},
		{name: "two words", value: "Ada Lovelace", want: rules.Result{Valid: true}},
		{name: "tab inside", value: "Ada\tLovelace", want: rules.Result{Code: rules.CodeNameInvalidChars}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, rules.ValidateName(tc.value)); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateName_Messages(t *testing.T) {
	if got := rules.ValidateName("").Message(); got != "Full name is required." {
		t.Fatalf("unexpected message %q", got)
	}
	if got := rules.ValidateName("A").Message(); got != "Name must be at least 2 characters." {
		t.Fatalf("unexpected message %q", got)
	}
	if got := rules.ValidateName("Ada").Message(); got != "" {
		t.Fatalf("expected empty message for valid name, got %q", got)
	}
}

func TestValidateEmail(t *testing.T) {
	cases := map[string]bool{
		"a@b.c":                 true,
		"  ada@example.com":     true,
		"ada@mail.example.org":  true,
		"a@b":                   false,
		"a b@c.com":             false,
		"ada@exa mple.com":      false,
		"@b.c":                  false,
		"a@@b.c":                false,
		"a\u00a0b@c.com":        false,
		"ada@exa\u2003mple.com": false,
		"a\vb@c.com":            false,
		"a@b.c\u2028d":          false,
		"a\ufeffb@c.com":        false,
		"":                      false,
	}
	for value, want := range cases {
		if got := rules.ValidateEmail(value).Valid; got != want {
			t.Fatalf("ValidateEmail(%q) = %v, want %v", value, got, want)
		}
	}
	if got := rules.ValidateEmail("").Code; got != rules.CodeEmailRequired {
		t.Fatalf("expected required code, got %q", got)
	}
	if got := rules.ValidateEmail("a@b").Code; got != rules.CodeEmailInvalid {
		t.Fatalf("expected invalid code, got %q", got)
	}
}

func TestSanitizePhone(t *testing.T) {
	cases := map[string]string{
		"abc123456789xx": "123456789",
		"98765-43210":    "9876543210",
		"987654321012":   "9876543210",
		"+91 98765 4321": "9198765432",
		"":               "",
		"phone":          "",
	}
	for in, want := range cases {
		if got := rules.SanitizePhone(in); got != want {
			t.Fatalf("SanitizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		value string
		want  rules.Result
	}{
		{value: "", want: rules.Result{Code: rules.CodePhoneRequired}},
		{value: "123456789", want: rules.Result{Code: rules.CodePhoneInvalid}},
		{value: "5876543210", want: rules.Result{Code: rules.CodePhoneInvalid}},
		{value: "987654321", want: rules.Result{Code: rules.CodePhoneInvalid}},
		{value: "6876543210", want: rules.Result{Valid: true}},
		{value: "9876543210", want: rules.Result{Valid: true}},
		{value: " 7876543210 ", want: rules.Result{Valid: true}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, rules.ValidatePhone(tc.value)); diff != "" {
			t.Fatalf("ValidatePhone(%q) mismatch (-want +got):\n%s", tc.value, diff)
		}
	}
}

func TestEvaluatePassword(t *testing.T) {
	cases := []struct {
		value string
		want  rules.PasswordConditions
	}{
		{
			value: "Abcdef1!",
			want:  rules.PasswordConditions{MinLength: true, FirstUpper: true, HasLower: true, HasDigit: true, HasSpecial: true},
		},
		{
			value: "abcdefg1!",
			want:  rules.PasswordConditions{MinLength: true, FirstUpper: false, HasLower: true, HasDigit: true, HasSpecial: true},
		},
		{
			value: "A",
			want:  rules.PasswordConditions{FirstUpper: true},
		},
		{
			value: "",
			want:  rules.PasswordConditions{},
		},
		{
			value: `ABCDEFGH"`,
			want:  rules.PasswordConditions{MinLength: true, FirstUpper: true, HasSpecial: true},
		},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, rules.EvaluatePassword(tc.value)); diff != "" {
			t.Fatalf("EvaluatePassword(%q) mismatch (-want +got):\n%s", tc.value, diff)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if res := rules.ValidatePassword("Abcdef1!"); !res.Valid {
		t.Fatalf("expected strong password to pass, got %+v", res)
	}
	res := rules.ValidatePassword("abcdefg1!")
	if res.Valid || res.Code != rules.CodePasswordWeak {
		t.Fatalf("expected weak password result, got %+v", res)
	}
	if res := rules.ValidatePassword(""); res.Valid || res.Code != rules.CodePasswordWeak {
		t.Fatalf("expected empty password to fail with weak code, got %+v", res)
	}
	if res := rules.ValidatePassword(" Abcdef1!"); res.Valid {
		t.Fatalf("expected leading space to break the first letter rule")
	}
}

func TestValidateConfirmPassword(t *testing.T) {
	if res := rules.ValidateConfirmPassword("Abcdef1!", "Abcdef1!"); !res.Valid {
		t.Fatalf("expected match to pass, got %+v", res)
	}
	res := rules.ValidateConfirmPassword("Abcdef1?", "Abcdef1!")
	if res.Valid || res.Message() != "Passwords do not match." {
		t.Fatalf("expected mismatch, got %+v", res)
	}
	res = rules.ValidateConfirmPassword("", "Abcdef1!")
	if res.Code != rules.CodeConfirmRequired {
		t.Fatalf("expected required code, got %+v", res)
	}
}

func TestValidateDispatch(t *testing.T) {
	values := rules.Values{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Phone:           "9876543210",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
	}
	for _, field := range rules.Fields() {
		if res := rules.Validate(field, values); !res.Valid {
			t.Fatalf("field %s: expected valid, got %+v", field, res)
		}
	}

	values.Set(rules.FieldConfirmPassword, "nope")
	if got := values.Get(rules.FieldConfirmPassword); got != "nope" {
		t.Fatalf("Set/Get mismatch: %q", got)
	}
	if res := rules.Validate(rules.FieldConfirmPassword, values); res.Code != rules.CodeConfirmMismatch {
		t.Fatalf("expected mismatch, got %+v", res)
	}
}

func TestParseField(t *testing.T) {
	field, err := rules.ParseField(" phone ")
	if err != nil || field != rules.FieldPhone {
		t.Fatalf("ParseField: got %q, %v", field, err)
	}
	if _, err := rules.ParseField("age"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}
