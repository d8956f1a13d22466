package domain

// MessageSet holds every user-facing sentence for one locale.
// The zero value (all empty strings) is what unknown locales get.
type MessageSet struct {
	Welcome   string
	Play      string
	Help      string
	Goodbye   string
	Reflector string
	Fallback  string
	Error     string
}
