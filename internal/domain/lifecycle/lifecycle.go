// Package lifecycle holds timing constants shared by start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and storage handles.
const DefaultTimeout = 10 * time.Second
