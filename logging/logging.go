package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

var debugMode atomic.Bool

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		debugMode.Store(false)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open debug log %q: %w", filename, err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("bubbletea log %q: %w", filename, err)
	}
	debugMode.Store(true)

	cleanup = func() {
		debugMode.Store(false)
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// SetOutput points logging at w and turns debug mode on. Used by the web
// server when running without a debug file, and by tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	debugMode.Store(w != io.Discard)
}

// IsDebugMode reports whether log output is going anywhere.
func IsDebugMode() bool {
	return debugMode.Load()
}

func Debug(msg string) {
	output("DEBUG", msg)
}

func Debugf(format string, args ...any) {
	output("DEBUG", fmt.Sprintf(format, args...))
}

func Infof(format string, args ...any) {
	output("INFO", fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	output("WARN", fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) {
	output("ERROR", fmt.Sprintf(format, args...))
}

func output(level, msg string) {
	if !debugMode.Load() {
		return
	}
	// skip output and the level helper so Lshortfile names the caller
	_ = log.Output(3, level+" "+msg)
}
