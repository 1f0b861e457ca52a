// Package delivery defines the contract every transport server satisfies.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP today). The
// composition root starts each registered Delivery and stops it via fx hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
