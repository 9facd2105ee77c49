package events

import (
	"log/slog"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedLog struct {
	msg    string
	fields watermill.LogFields
}

type captureLogger struct {
	traces []capturedLog
}

func (l *captureLogger) Error(msg string, err error, fields watermill.LogFields) {}
func (l *captureLogger) Info(msg string, fields watermill.LogFields)             {}
func (l *captureLogger) Debug(msg string, fields watermill.LogFields)            {}
func (l *captureLogger) Trace(msg string, fields watermill.LogFields) {
	l.traces = append(l.traces, capturedLog{msg: msg, fields: fields})
}
func (l *captureLogger) With(fields watermill.LogFields) watermill.LoggerAdapter { return l }

func TestLoggerSinkEmitsTraceWithEventFields(t *testing.T) {
	logger := &captureLogger{}
	sink := NewLoggerSink(logger)

	sink.Log(MessagesEvent{IsSend: true, Channel: 3, Source: 1, Target: 2, SeqNo: 7, Length: 4})

	require.Len(t, logger.traces, 1)
	assert.Equal(t, "channel message", logger.traces[0].msg)
	assert.Equal(t, watermill.LogFields{
		"is_send": true,
		"channel": 3,
		"source":  1,
		"target":  2,
		"seq_no":  7,
		"length":  4,
	}, logger.traces[0].fields)
}

func TestNewLoggerSinkRequiresLogger(t *testing.T) {
	assert.Panics(t, func() { NewLoggerSink(nil) })
}

func TestNewSlogSinkRequiresLogger(t *testing.T) {
	assert.Panics(t, func() { NewSlogSink(nil) })
}

func TestNewSlogSinkAcceptsLogger(t *testing.T) {
	sink := NewSlogSink(slog.Default())
	require.NotNil(t, sink)
	sink.Log(MessagesEvent{Channel: 1})
}
