// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of every
// lifecycle hook (HTTP server, database pool).
const DefaultTimeout = 10 * time.Second
