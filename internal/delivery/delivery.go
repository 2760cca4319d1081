// Package delivery contains the outer surfaces that drive the use cases.
package delivery

import "context"

// Delivery is a long-running surface such as the HTTP gateway.
type Delivery interface {
	Serve(ctx context.Context) error
}
