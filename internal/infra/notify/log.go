package notify

import (
	"context"
	"log/slog"
)

// LogNotifier writes staff alerts to the structured log. It is the default
// notifier for local development where no broker runs.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, recipient, message string) error {
	n.logger.InfoContext(ctx, "staff notification",
		"recipient", recipient,
		"message", message,
	)
	return nil
}
