package logger

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	c "eventify-backend/context"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

const correlationID = "correlation_id"

func init() {
	logger = logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func entry(ctx context.Context) *logrus.Entry {
	return logger.WithField(correlationID, c.GetContextValue(ctx, c.ContextKeyCorrelationID))
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Fatalf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Infof(format, args...)
}

func Info(ctx context.Context, msg string) {
	entry(ctx).Info(msg)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Warnf(format, args...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Debug(flatten(format, args...))
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Error(flatten(format, args...))
}

func LogExecutionTime(ctx context.Context, start time.Time, name string) {
	entry(ctx).Infof("%s took %v", name, time.Since(start))
}

// flatten keeps multi-line errors on a single log line.
func flatten(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	msg = strings.ReplaceAll(msg, "\r\n", "\\n ")
	return strings.ReplaceAll(msg, "\n", "\\n ")
}
