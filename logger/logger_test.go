package logger_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, logger.ParseLevel("warning"))
	assert.Equal(t, logger.DefaultLevel, logger.ParseLevel("loud"))
	assert.Equal(t, logger.DefaultLevel, logger.ParseLevel(""))
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("warn", &buf)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFormatter(t *testing.T) {
	f := &logger.Formatter{DisableColors: true}
	entry := &logrus.Entry{
		Time:    time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "dispatched",
		Data:    logrus.Fields{"to": "Harbor", "qty": 3},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "INFO: dispatched {qty=3, to=Harbor}\n", string(out))

	f.TimestampFormat = "15:04:05"
	entry.Level = logrus.WarnLevel
	entry.Data = nil
	out, err = f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[09:30:00] WARN: dispatched\n", string(out))
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	assert.NotPanics(t, func() { log.Error("nothing") })
}

func TestOrDiscard(t *testing.T) {
	var typedNil *logrus.Logger
	var nilEntry *logrus.Entry

	for name, in := range map[string]logrus.FieldLogger{
		"untyped nil": nil,
		"typed nil":   typedNil,
		"nil entry":   nilEntry,
	} {
		t.Run(name, func(t *testing.T) {
			got := logger.OrDiscard(in)
			require.NotNil(t, got)
			assert.NotPanics(t, func() { got.WithField("k", 1).Info("dropped") })
		})
	}

	var buf bytes.Buffer
	live := logger.New("info", &buf)
	assert.Same(t, live, logger.OrDiscard(live))
}
