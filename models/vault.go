package models

// GenerateRequest is the body of POST /api/generate-password.
type GenerateRequest struct {
	Length int `json:"length"`
}

// GenerateResponse is the backend reply to a generate request. The plaintext
// password never leaves the backend; only its masked form does.
type GenerateResponse struct {
	Success bool   `json:"success"`
	Length  int    `json:"length"`
	Masked  string `json:"masked"`
	Error   string `json:"error,omitempty"`
}

// EncryptResponse is the backend reply to POST /api/encrypt-password.
type EncryptResponse struct {
	Success bool   `json:"success"`
	Preview string `json:"preview"`
	Length  int    `json:"length"`
	Error   string `json:"error,omitempty"`
}

// EncryptedPayload is the backend reply to GET /api/copy-to-clipboard.
// Data is the armored ciphertext meant to be placed on the clipboard.
type EncryptedPayload struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
