package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"showcase/core"
	"showcase/database"
	"showcase/state"
	"showcase/version"

	"github.com/gin-gonic/gin"
)

// Shared database accessor (must be initialized in main.go)
var acc *database.Accessor

// SetAccessor supplies the database accessor used by system handlers.
func SetAccessor(a *database.Accessor) {
	acc = a
}

// HealthCheck health endpoint
func HealthCheck(c *gin.Context) {
	dbHealthy := acc.Ping(c.Request.Context())

	health := gin.H{
		"status":           "healthy",
		"timestamp":        time.Now().Unix(),
		"gallery_sessions": state.Global.SessionCount(),
		"db_healthy":       dbHealthy,
	}

	if !dbHealthy {
		health["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}

// GetMetrics gathers system metrics
func GetMetrics(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	metrics := gin.H{
		"timestamp": time.Now().Unix(),
		"sqlite": gin.H{
			"up":                  acc.Ping(c.Request.Context()),
			"busy_errors_total":   database.SQLiteBusyErrorsTotal(),
			"locked_errors_total": database.SQLiteLockedErrorsTotal(),
		},
		"gallery": gin.H{
			"sessions": state.Global.SessionCount(),
		},
		"error_logs": gin.H{
			"total": len(core.ErrorLoggerInstance.GetErrorLogs()),
		},
		"system": gin.H{
			"goroutines":   runtime.NumGoroutine(),
			"memory_alloc": mem.Alloc,
			"memory_total": mem.TotalAlloc,
			"memory_sys":   mem.Sys,
			"gc_runs":      mem.NumGC,
		},
	}

	c.JSON(http.StatusOK, metrics)
}

func promLabelEscape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// GetPrometheusMetrics writes Prometheus-formatted metrics to the HTTP
// response for scraping: build info, SQLite connectivity and error counters,
// gallery session count, goroutine and memory statistics, and GC runs.
func GetPrometheusMetrics(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	var buf bytes.Buffer

	buf.WriteString("# HELP showcase_build_info Build information.\n")
	buf.WriteString("# TYPE showcase_build_info gauge\n")
	fmt.Fprintf(
		&buf,
		"showcase_build_info{version=\"%s\",commit=\"%s\",build_time=\"%s\"} 1\n",
		promLabelEscape(version.Version),
		promLabelEscape(version.CommitHash),
		promLabelEscape(version.BuildTime),
	)

	buf.WriteString("# HELP showcase_sqlite_up SQLite connectivity (1=up, 0=down).\n")
	buf.WriteString("# TYPE showcase_sqlite_up gauge\n")
	if acc.Ping(c.Request.Context()) {
		buf.WriteString("showcase_sqlite_up 1\n")
	} else {
		buf.WriteString("showcase_sqlite_up 0\n")
	}

	buf.WriteString("# HELP showcase_sqlite_busy_errors_total Total SQLite busy errors observed.\n")
	buf.WriteString("# TYPE showcase_sqlite_busy_errors_total counter\n")
	fmt.Fprintf(&buf, "showcase_sqlite_busy_errors_total %d\n", database.SQLiteBusyErrorsTotal())

	buf.WriteString("# HELP showcase_sqlite_locked_errors_total Total SQLite locked errors observed.\n")
	buf.WriteString("# TYPE showcase_sqlite_locked_errors_total counter\n")
	fmt.Fprintf(&buf, "showcase_sqlite_locked_errors_total %d\n", database.SQLiteLockedErrorsTotal())

	buf.WriteString("# HELP showcase_gallery_sessions Live gallery view sessions.\n")
	buf.WriteString("# TYPE showcase_gallery_sessions gauge\n")
	fmt.Fprintf(&buf, "showcase_gallery_sessions %d\n", state.Global.SessionCount())

	buf.WriteString("# HELP showcase_go_goroutines Number of goroutines.\n")
	buf.WriteString("# TYPE showcase_go_goroutines gauge\n")
	fmt.Fprintf(&buf, "showcase_go_goroutines %d\n", runtime.NumGoroutine())

	buf.WriteString("# HELP showcase_memory_alloc_bytes Bytes of allocated heap objects.\n")
	buf.WriteString("# TYPE showcase_memory_alloc_bytes gauge\n")
	fmt.Fprintf(&buf, "showcase_memory_alloc_bytes %d\n", mem.Alloc)

	buf.WriteString("# HELP showcase_memory_sys_bytes Bytes obtained from the OS.\n")
	buf.WriteString("# TYPE showcase_memory_sys_bytes gauge\n")
	fmt.Fprintf(&buf, "showcase_memory_sys_bytes %d\n", mem.Sys)

	buf.WriteString("# HELP showcase_gc_runs_total Number of completed GC cycles.\n")
	buf.WriteString("# TYPE showcase_gc_runs_total counter\n")
	fmt.Fprintf(&buf, "showcase_gc_runs_total %d\n", mem.NumGC)

	c.Data(http.StatusOK, "text/plain; version=0.0.4; charset=utf-8", buf.Bytes())
}

// GetErrorLogs returns recent error logs
func GetErrorLogs(c *gin.Context) {
	logs := core.ErrorLoggerInstance.GetErrorLogs()
	c.JSON(http.StatusOK, logs)
}

// GetErrorLog returns a single error log entry by ID
func GetErrorLog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid error log id"})
		return
	}

	entry := core.ErrorLoggerInstance.GetErrorLogByID(id)
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "error log not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ClearErrorLogs wipes error logs
func ClearErrorLogs(c *gin.Context) {
	core.ErrorLoggerInstance.ClearErrorLogs()
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Error logs cleared"})
}
