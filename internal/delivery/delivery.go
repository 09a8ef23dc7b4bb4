// Package delivery holds the transports that expose the coordinator.
package delivery

import "context"

// Delivery is a transport served for the lifetime of the process.
type Delivery interface {
	Serve(ctx context.Context) error
}
