package delivery

import "context"

// Delivery is a long-running inbound adapter, such as the web server.
type Delivery interface {
	Serve(ctx context.Context) error
}
