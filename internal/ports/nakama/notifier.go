package nakama

import (
	"context"
	"io"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/sirupsen/logrus"

	"tienlen-server/internal/app"
)

type queuedEvent struct {
	recipients []string
	ev         app.Event
}

// bufferNotifier holds room events until the match handler can dispatch them.
// Nakama only allows dispatcher calls from inside the match callbacks, while
// score updates are delivered from background goroutines.
type bufferNotifier struct {
	mu    sync.Mutex
	queue []queuedEvent
}

func (b *bufferNotifier) Notify(_ context.Context, recipients []string, ev app.Event) {
	rs := make([]string, len(recipients))
	copy(rs, recipients)

	b.mu.Lock()
	b.queue = append(b.queue, queuedEvent{recipients: rs, ev: ev})
	b.mu.Unlock()
}

func (b *bufferNotifier) drain() []queuedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.queue
	b.queue = nil
	return out
}

// runtimeHook forwards logrus entries to the Nakama runtime logger.
type runtimeHook struct {
	logger runtime.Logger
}

func (h runtimeHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h runtimeHook) Fire(e *logrus.Entry) error {
	l := h.logger
	if len(e.Data) > 0 {
		l = l.WithFields(map[string]interface{}(e.Data))
	}
	switch e.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		l.Error("%s", e.Message)
	case logrus.WarnLevel:
		l.Warn("%s", e.Message)
	case logrus.InfoLevel:
		l.Info("%s", e.Message)
	default:
		l.Debug("%s", e.Message)
	}
	return nil
}

// newRuntimeLogger returns a logrus logger whose output goes to the Nakama logger.
func newRuntimeLogger(logger runtime.Logger) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	l.AddHook(runtimeHook{logger: logger})
	return l
}
