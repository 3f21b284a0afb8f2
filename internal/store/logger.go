package store

import (
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
)

var discardLogger = &log.Logger{Handler: discard.Default, Level: log.FatalLevel}

// badgerLogger forwards badger's messages to apex/log.
type badgerLogger struct {
	log log.Interface
}

func (l badgerLogger) entry() *log.Entry {
	return l.log.WithField("component", "badger")
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.entry().Errorf(trim(format), args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.entry().Warnf(trim(format), args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.entry().Debugf(trim(format), args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.entry().Debugf(trim(format), args...)
}

// badger terminates its formats with a newline.
func trim(format string) string {
	return strings.TrimSuffix(format, "\n")
}
