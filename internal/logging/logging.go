// Package logging builds the process zerolog.Logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects level, encoding and an optional rotated file sink.
type Options struct {
	Level      string
	Format     string // console | json
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	// Stderr overrides the terminal sink; defaults to os.Stderr.
	Stderr io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel maps a level name to zerolog; empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns the logger and a closer for the file sink (a no-op when none).
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	term := opts.Stderr
	if term == nil {
		term = os.Stderr
	}
	var out io.Writer = term
	if opts.Format != "json" {
		out = zerolog.ConsoleWriter{Out: term, TimeFormat: time.RFC3339}
	}
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		// file sink is always JSON so it stays machine readable
		out = zerolog.MultiLevelWriter(out, lj)
		closer = lj
	}
	l := zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "mecjd").Logger()
	return l, closer, nil
}
