package vanilla

// ChromeClass is a typed identifier for semantic page chrome CSS classes.
type ChromeClass string

const (
	ClassContainer ChromeClass = "formcheck-container"
	ClassHeader    ChromeClass = "formcheck-header"
	ClassStatus    ChromeClass = "formcheck-status"
	ClassForm      ChromeClass = "formcheck-form"
	ClassField     ChromeClass = "formcheck-field"
	ClassActions   ChromeClass = "formcheck-actions"
)

func chromeContext() map[string]any {
	return map[string]any{
		"container": string(ClassContainer),
		"header":    string(ClassHeader),
		"status":    string(ClassStatus),
		"form":      string(ClassForm),
		"field":     string(ClassField),
		"actions":   string(ClassActions),
	}
}
