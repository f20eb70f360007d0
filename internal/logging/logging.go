package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFile   = "git-branch-control.log"
	defaultMaxSizeMB = 1
	maxBackups       = 2
	maxAgeDays       = 30
)

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	maxSizeMB    = defaultMaxSizeMB
	writer       *lumberjack.Logger
	logger       *zap.Logger
)

// Error writes errors to the shared log file regardless of trace settings.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	l := current()
	mu.Unlock()
	l.Error("error", zap.String("error", err.Error()))
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	if !traceEnabled {
		mu.Unlock()
		return
	}
	l := current()
	mu.Unlock()
	if payload == nil {
		l.Debug(event)
		return
	}
	l.Debug(event, zap.Any("payload", payload))
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetMaxSize sets the size in megabytes at which the log file is rotated.
func SetMaxSize(megabytes int) {
	mu.Lock()
	defer mu.Unlock()
	if megabytes <= 0 {
		megabytes = defaultMaxSizeMB
	}
	if megabytes == maxSizeMB {
		return
	}
	closeLocked()
	maxSizeMB = megabytes
}

// Close flushes and releases the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing log file failed: %v\n", err)
		}
		writer = nil
	}
}

func current() *zap.Logger {
	if logger != nil {
		return logger
	}
	writer = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.MessageKey = "event"
	encoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(writer),
		zapcore.DebugLevel,
	)
	logger = zap.New(core)
	return logger
}
