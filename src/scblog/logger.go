// Package scblog provides leveled logging for the combiner-box analyzer.
// A single process-wide level gates output; callers use the printf-style
// helpers so the pipeline packages stay free of logging configuration.
package scblog

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// levelTags is indexed by Level for the line prefix.
var levelTags = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLevel parses and sets the global log level. Unknown names are ignored.
func SetLevel(s string) {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		atomic.StoreInt32(&currentLevel, int32(l))
	}
}

// GetLevel returns the current global log level.
func GetLevel() Level { return Level(atomic.LoadInt32(&currentLevel)) }

func logf(l Level, format string, args ...interface{}) {
	if GetLevel() > l {
		return
	}
	msg := format
	// A caller passing a pre-formatted string may have literal % in it.
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	baseLogger.Printf("[%s] %s", levelTags[l], msg)
}

// Debugf logs at debug level.
func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }

// Infof logs at info level.
func Infof(format string, a ...interface{}) { logf(LevelInfo, format, a...) }

// Warnf logs at warn level.
func Warnf(format string, a ...interface{}) { logf(LevelWarn, format, a...) }

// Errorf logs at error level.
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs the elapsed time of a pipeline stage at debug level.
// Use with defer: defer scblog.TimeTrack(time.Now(), "load").
func TimeTrack(start time.Time, label string) {
	elapsed := time.Since(start)
	Debugf("%s took %s", label, elapsed)
}
