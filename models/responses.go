package models

// ErrorResponse is the JSON body returned for every failed HTTP request.
// Message carries a short human-readable description; the machine-readable
// part of the failure is the HTTP status code itself.
type ErrorResponse struct {
	Message string `json:"message"`
}

// DeleteResponse confirms a successful DELETE of a user record.
type DeleteResponse struct {
	// Message is a short confirmation text.
	Message string `json:"message"`

	// ID is the identifier of the removed record.
	ID int64 `json:"id"`
}
