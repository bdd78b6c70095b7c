package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogNotifier writes reminder events to the process logger. Stands in
// for a push-notification gateway.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) HabitReminder(ctx context.Context, habitID uuid.UUID, habitName string) error {
	n.logger.Info("habit reminder",
		slog.String("habit_id", habitID.String()),
		slog.String("habit_name", habitName))
	return nil
}

func (n *LogNotifier) DailySummary(ctx context.Context, completedCount, totalCount, streak int) error {
	n.logger.Info("daily summary",
		slog.Int("completed", completedCount),
		slog.Int("total", totalCount),
		slog.Int("streak", streak))
	return nil
}
