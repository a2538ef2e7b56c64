package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jxsl13/attr-diff/model"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 2:
		level = zerolog.TraceLevel
	case verbosity == 1:
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

// exitCode reports err on stderr and maps it to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(os.Stderr, "attr-diff: %v\n", err)

	var cfgErr *model.ConfigError
	if errors.As(err, &cfgErr) {
		return exitUsage
	}
	return exitFailure
}
