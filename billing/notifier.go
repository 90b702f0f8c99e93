// Package billing is the boundary to the external subscription collaborator.
// The engine decides when to stop billing or mark lifetime access; the actual
// payment provider integration lives outside this service.
package billing

import "go.uber.org/zap"

// Notifier receives lifecycle signals. CancelSubscription fires once when a
// grace window lapses unclaimed; MarkLifetime fires once on a successful
// lifetime claim.
type Notifier interface {
	CancelSubscription(userID uint, reason string)
	MarkLifetime(userID uint, source string)
}

// LogNotifier records signals in the application log. It stands in for the
// real payment-provider integration in development and tests.
type LogNotifier struct {
	Logger *zap.SugaredLogger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) CancelSubscription(userID uint, reason string) {
	if n.Logger != nil {
		n.Logger.Infow("billing: cancel subscription", "user_id", userID, "reason", reason)
	}
}

func (n *LogNotifier) MarkLifetime(userID uint, source string) {
	if n.Logger != nil {
		n.Logger.Infow("billing: mark lifetime", "user_id", userID, "source", source)
	}
}
