package dictionary

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarning
	LogError
)

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "DEBUG"
	case LogInfo:
		return "INFO"
	case LogWarning:
		return "WARN"
	case LogError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel maps a configured level name ("debug", "info", "warn",
// "error") to a LogLevel.
func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LogDebug, nil
	case "", "info":
		return LogInfo, nil
	case "warn", "warning":
		return LogWarning, nil
	case "error":
		return LogError, nil
	default:
		return LogInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Logger records lookup activity. The terminal belongs to the UI, so output
// only goes to a file.
type Logger struct {
	mu         sync.Mutex
	logFile    *os.File
	fileWriter *log.Logger
	minLevel   LogLevel
}

// NewLogger creates a logger writing to logPath. An empty path discards everything.
func NewLogger(logPath string) (*Logger, error) {
	logger := &Logger{minLevel: LogInfo}

	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.logFile = file
		logger.fileWriter = log.New(file, "", 0)
	}

	return logger, nil
}

// NopLogger returns a logger that discards everything.
func NopLogger() *Logger {
	l, _ := NewLogger("")
	return l
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile == nil {
		return nil
	}
	err := l.logFile.Close()
	l.logFile = nil
	l.fileWriter = nil
	return err
}

// SetMinLevel sets the minimum log level
func (l *Logger) SetMinLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// Log logs a message at the specified level
func (l *Logger) Log(level LogLevel, component, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logEntry(level, component, message, details)
}

func (l *Logger) Debug(component, message string, details map[string]interface{}) {
	l.Log(LogDebug, component, message, details)
}

func (l *Logger) Info(component, message string, details map[string]interface{}) {
	l.Log(LogInfo, component, message, details)
}

func (l *Logger) Warning(component, message string, details map[string]interface{}) {
	l.Log(LogWarning, component, message, details)
}

// Error logs err under message.
func (l *Logger) Error(component, message string, err error) {
	details := map[string]interface{}{}
	if err != nil {
		details["error"] = err.Error()
	}
	l.Log(LogError, component, message, details)
}

func (l *Logger) logEntry(level LogLevel, component, message string, details map[string]interface{}) {
	if level < l.minLevel || l.fileWriter == nil {
		return
	}

	logLine := fmt.Sprintf("[%s] %s %s: %s",
		time.Now().Format("2006-01-02 15:04:05.000"),
		level.String(),
		component,
		message,
	)
	if len(details) > 0 {
		logLine += fmt.Sprintf(" | %v", details)
	}
	l.fileWriter.Println(logLine)
}
