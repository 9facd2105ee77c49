package events

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
)

var logLevelMapping = map[slog.Level]slog.Level{
	slog.LevelDebug: slog.LevelDebug,
	slog.LevelInfo:  slog.LevelInfo,
	slog.LevelWarn:  slog.LevelWarn,
	slog.LevelError: slog.LevelError,
}

// NewSlogSink wraps a slog.Logger so channel events land in an application's
// existing structured logger.
func NewSlogSink(log *slog.Logger) Sink {
	if log == nil {
		panic("shardflow: slog logger cannot be nil")
	}
	return NewLoggerSink(watermill.NewSlogLoggerWithLevelMapping(log, logLevelMapping))
}

// NewLoggerSink wraps a Watermill LoggerAdapter. Each event is emitted at
// Trace level with the event fields attached.
func NewLoggerSink(logger watermill.LoggerAdapter) Sink {
	if logger == nil {
		panic("shardflow: watermill logger cannot be nil")
	}
	return &loggerSink{logger: logger}
}

type loggerSink struct {
	logger watermill.LoggerAdapter
}

func (s *loggerSink) Log(event MessagesEvent) {
	s.logger.Trace("channel message", watermill.LogFields{
		"is_send": event.IsSend,
		"channel": event.Channel,
		"source":  event.Source,
		"target":  event.Target,
		"seq_no":  event.SeqNo,
		"length":  event.Length,
	})
}
