package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type LogLevel int

type Logger struct {
	logLevel LogLevel
	logDir   string
	logger   *log.Logger
	closer   io.Closer
}

const (
	DEBUG LogLevel = iota
	INFO
	ERROR
	OFF
)

var (
	registryMu sync.RWMutex
	registry   = map[string]*Logger{}
)

// Get returns the logger registered under name, or a discarding logger so
// packages can log before (or without) the driver wiring one up.
func Get(name string) *Logger {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if ln, ok := registry[name]; ok {
		return ln
	}

	return discard
}

var discard = &Logger{logLevel: OFF, logger: log.New(io.Discard, "", 0)}

// New registers a file logger writing to LFront-<date>.log in logDir. An
// existing logger with the same name is returned unchanged.
func New(name string, logDir string, logLevel LogLevel) (*Logger, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if logger, exists := registry[name]; exists {
		return logger, nil
	}

	logger := &Logger{
		logLevel: logLevel,
		logDir:   logDir,
	}
	if err := logger.init(); err != nil {
		return nil, err
	}

	registry[name] = logger
	return logger, nil
}

// NewWithWriter registers a logger that writes to w instead of a file.
func NewWithWriter(name string, w io.Writer, logLevel LogLevel) *Logger {
	registryMu.Lock()
	defer registryMu.Unlock()

	logger := &Logger{
		logLevel: logLevel,
		logger:   log.New(w, name+" ", log.Ldate|log.Ltime|log.Lmsgprefix),
	}

	registry[name] = logger
	return logger
}

func (l *Logger) init() error {
	if err := os.MkdirAll(l.logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02")

	logFile, err := os.OpenFile(
		filepath.Join(l.logDir, fmt.Sprintf("LFront-%s.log", timestamp)),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.logger = log.New(logFile, "", log.Ldate|log.Ltime|log.Lshortfile)
	l.closer = logFile

	return nil
}

// ParseLevel accepts the names used in config files.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "", "info":
		return INFO, nil
	case "error":
		return ERROR, nil
	case "off", "none":
		return OFF, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

func (l *Logger) Level() LogLevel {
	return l.logLevel
}

func (l *Logger) Info(format string, v ...any) {
	if l.logLevel <= INFO {
		l.logger.Output(2, fmt.Sprintf("INFO: "+format, v...))
	}
}

func (l *Logger) Debug(format string, v ...any) {
	if l.logLevel <= DEBUG {
		l.logger.Output(2, fmt.Sprintf("DEBUG: "+format, v...))
	}
}

func (l *Logger) Error(format string, v ...any) {
	if l.logLevel <= ERROR {
		l.logger.Output(2, fmt.Sprintf("ERROR: "+format, v...))
	}
}

// ResetRegistry closes file loggers and forgets every registration.
func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()

	for _, l := range registry {
		if l.closer != nil {
			l.closer.Close()
		}
	}
	registry = map[string]*Logger{}
}
