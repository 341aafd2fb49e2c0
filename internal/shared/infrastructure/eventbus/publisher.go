// Package eventbus moves analytics events between processes over a topic
// exchange. Events are operational triggers, not a system of record, so
// publishing is best-effort and degrades to a noop without a broker.
package eventbus

import "context"

// Publisher sends a marshaled event envelope to the bus.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload []byte) error
	Close() error
}
