package core

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"showcase/config"
	"showcase/models"
)

// ErrorLogger records recoverable failures (driver/query errors, rejected
// submissions) in memory so the admin pages can surface them without a
// database round trip.
type ErrorLogger struct {
	logs      []*models.ErrorLog
	logsMap   map[int]*models.ErrorLog
	mu        sync.RWMutex
	idCounter int
}

const defaultMaxLogs = 100

var ErrorLoggerInstance *ErrorLogger

func init() {
	ErrorLoggerInstance = NewErrorLogger()
}

// NewErrorLogger constructs an empty error log ring
func NewErrorLogger() *ErrorLogger {
	return &ErrorLogger{
		logs:    make([]*models.ErrorLog, 0),
		logsMap: make(map[int]*models.ErrorLog),
	}
}

// capacity reads the configured cap on every append. Flags are parsed after
// package init, so a fixed capacity would miss --max-error-logs.
func (e *ErrorLogger) capacity() int {
	if config.Settings != nil && config.Settings.MaxErrorLogs > 0 {
		return config.Settings.MaxErrorLogs
	}
	return defaultMaxLogs
}

// LogError records an error log entry
func (e *ErrorLogger) LogError(level, source, message, detail string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Capture stack trace (skip first 3 frames)
	stack := e.getStackTrace(3)

	// Oldest entries fall off once the ring is full
	for max := e.capacity(); len(e.logs) >= max; {
		oldLog := e.logs[0]
		delete(e.logsMap, oldLog.ID)
		e.logs = e.logs[1:]
	}

	e.idCounter++
	errorLog := &models.ErrorLog{
		ID:        e.idCounter,
		Timestamp: time.Now(),
		Level:     level,
		Source:    source,
		Message:   message,
		Detail:    detail,
		Stack:     stack,
	}

	e.logs = append(e.logs, errorLog)
	e.logsMap[errorLog.ID] = errorLog
}

// GetErrorLogs returns recent error logs, latest first
func (e *ErrorLogger) GetErrorLogs() []*models.ErrorLog {
	e.mu.RLock()
	defer e.mu.RUnlock()

	total := len(e.logs)
	result := make([]*models.ErrorLog, total)

	for i := 0; i < total; i++ {
		result[i] = e.logs[total-1-i]
	}

	return result
}

// GetErrorLogByID returns a single error log by ID
func (e *ErrorLogger) GetErrorLogByID(id int) *models.ErrorLog {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.logsMap[id]
}

// ClearErrorLogs removes all error logs
func (e *ErrorLogger) ClearErrorLogs() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logs = make([]*models.ErrorLog, 0)
	e.logsMap = make(map[int]*models.ErrorLog)
	e.idCounter = 0
}

// getStackTrace captures stack trace information
func (e *ErrorLogger) getStackTrace(skip int) string {
	const maxDepth = 10
	var stack string

	for i := skip; i < skip+maxDepth; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		funcName := "unknown"
		if fn != nil {
			funcName = fn.Name()
		}

		stack += fmt.Sprintf("%s:%d %s\n", file, line, funcName)
	}

	return stack
}

// LogErrorSimple records a simple error
func LogErrorSimple(source, message string) {
	ErrorLoggerInstance.LogError("ERROR", source, message, "")
}

// LogErrorWithDetail records an error with details
func LogErrorWithDetail(source, message, detail string) {
	ErrorLoggerInstance.LogError("ERROR", source, message, detail)
}

// LogWarn records a warning
func LogWarn(source, message, detail string) {
	ErrorLoggerInstance.LogError("WARN", source, message, detail)
}
