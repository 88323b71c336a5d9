// Package logger builds the logrus logger shared by the lvroute packages.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when the configured level cannot be parsed.
const DefaultLevel = logrus.InfoLevel

// Formatter prints one line per entry: "[15:04:05] LEVEL: message {k=v, ...}".
// Fields are printed in key order.
type Formatter struct {
	TimestampFormat string
	DisableColors   bool
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var levelColor *color.Color
	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		levelColor = color.New(color.FgRed, color.Bold)
	case logrus.WarnLevel:
		levelColor = color.New(color.FgYellow, color.Bold)
	case logrus.InfoLevel:
		levelColor = color.New(color.FgCyan)
	default:
		levelColor = color.New(color.FgWhite, color.Faint)
	}

	level := levelText(entry.Level)
	if !f.DisableColors {
		level = levelColor.Sprint(level)
	}

	var b bytes.Buffer
	if f.TimestampFormat != "" {
		fmt.Fprintf(&b, "[%s] ", entry.Time.Format(f.TimestampFormat))
	}
	fmt.Fprintf(&b, "%s: %s", level, entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var fields bytes.Buffer
		fields.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				fields.WriteString(", ")
			}
			fmt.Fprintf(&fields, "%s=%v", k, entry.Data[k])
		}
		fields.WriteString("}")

		if f.DisableColors {
			b.Write(fields.Bytes())
		} else {
			b.WriteString(color.New(color.FgWhite, color.Faint).Sprint(fields.String()))
		}
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}

func levelText(l logrus.Level) string {
	switch l {
	case logrus.WarnLevel:
		return "WARN"
	default:
		txt, err := l.MarshalText()
		if err != nil {
			return "UNKNOWN"
		}
		return string(bytes.ToUpper(txt))
	}
}

// New returns a logger writing to out at the named level.
// Unknown levels fall back to DefaultLevel.
func New(level string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(ParseLevel(level))
	log.SetFormatter(&Formatter{
		TimestampFormat: "15:04:05",
		DisableColors:   color.NoColor,
	})

	return log
}

// ParseLevel converts a level name, defaulting to DefaultLevel.
func ParseLevel(level string) logrus.Level {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return DefaultLevel
	}

	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

// OrDiscard returns l, or a Discard logger when l is nil, including a nil
// *logrus.Logger or *logrus.Entry held in the interface.
func OrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	switch v := l.(type) {
	case nil:
		return Discard()
	case *logrus.Logger:
		if v == nil {
			return Discard()
		}
	case *logrus.Entry:
		if v == nil {
			return Discard()
		}
	}

	return l
}
