package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // message safe to surface next to the affected view
	Fields    map[string]string // field-level form errors (optional)
	Status    int               // HTTP status, set for server-reported errors
	Err       error             // underlying error (for logs)
}
