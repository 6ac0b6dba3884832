package dto

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// FieldErrors maps field names to validation messages. Services return
// it as an error; handlers serialize it with status 400.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	for field, msg := range f {
		return field + ": " + msg
	}
	return "validation failed"
}

// ValidationResponse is the structured 4xx payload for field-level
// failures.
type ValidationResponse struct {
	Error  bool        `json:"error"`
	Fields FieldErrors `json:"fields"`
}
