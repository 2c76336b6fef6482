package consumer

import "errors"

var (
	// ErrBrokerConnectionFailure indicates the broker connection (or its
	// channel) could not be established within the configured attempt
	// budget. The HTTP path keeps serving; queue-driven updates simply
	// never arrive.
	ErrBrokerConnectionFailure = errors.New("broker connection failure")

	// ErrBrokerSubscriptionFailure indicates the queue could not be
	// declared or subscribed to on an otherwise healthy connection.
	ErrBrokerSubscriptionFailure = errors.New("broker subscription failure")
)
