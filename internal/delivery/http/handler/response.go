package handler

// ErrorResponse is the single error envelope both endpoints use. Only a
// human-readable message is exposed; never stack traces or query shapes.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
