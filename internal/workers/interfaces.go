// Package workers runs detached background work, such as a clipboard
// sanitize cycle, that must outlive the request that started it while
// still being drained on shutdown.
package workers

import "context"

// Task is a unit of detached work. The context it receives is never
// canceled by the caller that scheduled it.
type Task func(ctx context.Context)
