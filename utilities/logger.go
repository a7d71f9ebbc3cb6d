package utilities

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
	logMutex sync.Mutex
)

// SetupLogging wires the leveled loggers to stdout/stderr plus rotated
// files under logDir.
func SetupLogging(logDir string) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	infoFile := rotatedLogFile(filepath.Join(logDir, "info.log"))
	warnFile := rotatedLogFile(filepath.Join(logDir, "warn.log"))
	errorFile := rotatedLogFile(filepath.Join(logDir, "error.log"))

	infoWriter := io.MultiWriter(os.Stdout, infoFile)
	warnWriter := io.MultiWriter(os.Stdout, warnFile)
	errorWriter := io.MultiWriter(os.Stderr, errorFile)

	infoLog = log.New(infoWriter, "INFO: ", log.Ldate|log.Ltime)
	warnLog = log.New(warnWriter, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(errorWriter, "ERROR: ", log.Ldate|log.Ltime)

	// Override Go's default log
	log.SetOutput(infoWriter)
}

func rotatedLogFile(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
}

func getCallerInfo() string {
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	return runtime.FuncForPC(pc).Name()
}

func Log(level string, format string, v ...interface{}) {
	logMutex.Lock()
	defer logMutex.Unlock()

	if infoLog == nil {
		// Logging not set up (tests, seed tool); fall back to stderr.
		log.Printf("%s: "+format, append([]interface{}{level}, v...)...)
		return
	}

	message := fmt.Sprintf(format, v...)
	logEntry := fmt.Sprintf("[%s] %s", getCallerInfo(), message)

	switch level {
	case "WARNING":
		warnLog.Println(logEntry)
	case "ERROR":
		errorLog.Println(logEntry)
	default:
		infoLog.Println(logEntry)
	}
}

func Info(format string, v ...interface{}) {
	Log("INFO", format, v...)
}
func Warn(format string, v ...interface{}) {
	Log("WARNING", format, v...)
}
func Error(format string, v ...interface{}) {
	Log("ERROR", format, v...)
}
