package clipboard

import "errors"

// ErrUnavailable is returned when the OS clipboard cannot be accessed.
var ErrUnavailable = errors.New("clipboard unavailable")
