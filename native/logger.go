package native

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/udmf/resource"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the native package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the native package's logger.
// This must be called before any library is created.
func SetLogger(l *zap.Logger) {
	logger = l
}

// eventLogger logs object lifecycle events at debug level.
type eventLogger struct {
	log *zap.Logger
}

func (o *eventLogger) OnResourceEvent(e resource.Event) {
	o.log.Debug("object "+e.Type.String(),
		zap.Stringer("kind", e.Kind),
		zap.Uint32("handle", uint32(e.Handle)))
}
