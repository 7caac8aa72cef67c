package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries to the process log. It is the only
// sink in use; the interface exists so a durable sink can replace it without
// touching callers.
type StdoutAuditLogger struct {
	log *zap.Logger
}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{log: zap.L().Named("audit")}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.log.Info(entry.Action,
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
