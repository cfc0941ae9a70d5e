// Package delivery defines the contract every transport entry point
// (HTTP server, future workers) fulfills.
package delivery

import "context"

// Delivery is a long-running entry point of the application. Serve blocks
// until the delivery stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
