package utils

import (
	"io"
	"os"

	"github.com/inconshreveable/log15"
)

// NewLogger returns a logfmt logger writing to stderr at the given level.
// Unknown levels fall back to info.
func NewLogger(level string) log15.Logger {
	return newLogger(os.Stderr, level)
}

func newLogger(w io.Writer, level string) log15.Logger {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		lvl = log15.LvlInfo
	}
	log := log15.New("app", "slack-sandbox")
	log.SetHandler(log15.LvlFilterHandler(lvl, log15.StreamHandler(w, log15.LogfmtFormat())))
	return log
}

// DiscardLogger is used by tests and by callers that want no output.
func DiscardLogger() log15.Logger {
	log := log15.New()
	log.SetHandler(log15.DiscardHandler())
	return log
}
