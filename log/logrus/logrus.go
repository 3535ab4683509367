// Package logrus adapts a logrus.FieldLogger to cacheaside.Logger.
package logrus

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/cacheaside"
)

var _ cacheaside.Logger = Logger{}

type Logger struct{ E logrus.FieldLogger }

// New wraps l (a *logrus.Logger or *logrus.Entry). A nil l logs nowhere.
func New(l logrus.FieldLogger) Logger {
	if l == nil {
		nop := logrus.New()
		nop.SetOutput(io.Discard)
		l = nop
	}
	return Logger{E: l}
}

func (l Logger) Debug(msg string, f cacheaside.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f cacheaside.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f cacheaside.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f cacheaside.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f cacheaside.Fields) logrus.FieldLogger {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}
