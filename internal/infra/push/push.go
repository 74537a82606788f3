// Package push notifies the user's device when a plan lands.
package push

import "context"

//go:generate mockgen -source=push.go -destination=push_mock.go -package=push

// Notifier delivers a "plan ready" notification. Failures are logged by the
// caller and never fail the generation request.
type Notifier interface {
	PlanGenerated(ctx context.Context, userID string, blockCount int) error
}
