// Package clipboard abstracts the system clipboard so that the decrypt and
// sanitize flows can run against the real clipboard or a test double.
package clipboard

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

// Clipboard reads and replaces the current clipboard text.
type Clipboard interface {
	// ReadText returns the current clipboard text.
	ReadText(ctx context.Context) (string, error)
	// WriteText replaces the clipboard contents with text.
	WriteText(ctx context.Context, text string) error
}
