package handlers

// DetailResponse is the body of a not-found response.
// swagger:model DetailResponse
type DetailResponse struct {
	// Detail message
	// default: Not found.
	Detail string `json:"detail"`
}

// ErrorResponse is the body of an unexpected server error.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

const (
	notFoundDetail      = "Not found."
	internalServerError = "Internal server error"
	jsonParseError      = "JSON parse error."
)
