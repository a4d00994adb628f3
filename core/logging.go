package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// maxLogSize is the size above which an existing log is rotated on startup
const maxLogSize = 10 * 1024 * 1024

// logDir is relative to the working directory, swapped in tests
var logDir = "logs"

// SetupLogging routes the standard logger to logs/<name>.log when debug is set and discards it otherwise
// The screen belongs to the UI, so logs never go to stdout or stderr
// The returned file is nil when logging is disabled or the file cannot be opened
func SetupLogging(debug bool, name string) *os.File {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, name+".log")
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s.log", name, time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.Printf("logging started, pid %d", os.Getpid())
	return f
}
