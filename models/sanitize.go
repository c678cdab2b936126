package models

// SanitizeBatch is an ordered set of decoy strings returned by the backend.
// Items are written to the clipboard strictly in slice order.
type SanitizeBatch []string

// SanitizeResponse is the backend reply to POST /api/sanitize-clipboard.
type SanitizeResponse struct {
	Success          bool          `json:"success"`
	SanitizedStrings SanitizeBatch `json:"sanitized_strings,omitempty"`
	Message          string        `json:"message,omitempty"`
	Error            string        `json:"error,omitempty"`
}
