// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP today). Serve blocks
// until the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
