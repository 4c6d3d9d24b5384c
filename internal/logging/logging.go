// ABOUTME: logrus logger setup shared by the CLI and the MCP server.
// ABOUTME: Logs go to stderr, optionally also to a rotated file through lumberjack.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLevel keeps the CLI quiet unless something goes wrong.
const DefaultLevel = logrus.WarnLevel

// Params configures Setup.
type Params struct {
	Level    string
	JSON     bool
	FileName string
	// Stderr also writes to stderr when FileName is set.
	Stderr bool
	// Output replaces stderr. Used by tests.
	Output io.Writer
}

// Setup builds a logger from params. The returned close func releases the
// log file, if any.
func Setup(params Params) (*logrus.Logger, func() error) {
	logger := logrus.New()
	logger.SetLevel(GetLevel(params.Level))
	if params.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stderr
	if params.Output != nil {
		out = params.Output
	}

	if params.FileName == "" {
		logger.SetOutput(out)
		return logger, func() error { return nil }
	}

	if !strings.HasSuffix(params.FileName, ".log") {
		params.FileName += ".log"
	}
	file := &lumberjack.Logger{
		Filename:   params.FileName,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		Compress:   true,
	}
	if params.Stderr {
		logger.SetOutput(io.MultiWriter(out, file))
	} else {
		logger.SetOutput(file)
	}
	return logger, file.Close
}

// GetLevel parses a level name. Unknown or empty names give DefaultLevel.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return DefaultLevel
	}
}
