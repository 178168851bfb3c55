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
	debugLog *log.Logger
	logMutex sync.Mutex
)

func init() {
	// Sensible default so log calls work before SetupLogging runs (tests,
	// one-off commands).
	infoLog = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	warnLog = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
	debugLog = log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime)
}

// SetupLogging routes each level to stdout/stderr plus a rotating file
// under logDir.
func SetupLogging(logDir string) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	infoWriter := io.MultiWriter(os.Stdout, rollingFile(filepath.Join(logDir, "info.log")))
	warnWriter := io.MultiWriter(os.Stdout, rollingFile(filepath.Join(logDir, "warn.log")))
	errorWriter := io.MultiWriter(os.Stderr, rollingFile(filepath.Join(logDir, "error.log")))
	debugWriter := io.MultiWriter(os.Stdout, rollingFile(filepath.Join(logDir, "debug.log")))

	logMutex.Lock()
	defer logMutex.Unlock()
	infoLog = log.New(infoWriter, "INFO: ", log.Ldate|log.Ltime)
	warnLog = log.New(warnWriter, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(errorWriter, "ERROR: ", log.Ldate|log.Ltime)
	debugLog = log.New(debugWriter, "DEBUG: ", log.Ldate|log.Ltime)

	// Override Go's default log.
	log.SetOutput(infoWriter)
}

func rollingFile(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    20, // MB
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

func logAt(logger *log.Logger, format string, v ...interface{}) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logger.Printf("[%s] %s", getCallerInfo(), fmt.Sprintf(format, v...))
}

func Info(format string, v ...interface{}) {
	logAt(infoLog, format, v...)
}

func Warn(format string, v ...interface{}) {
	logAt(warnLog, format, v...)
}

func Error(format string, v ...interface{}) {
	logAt(errorLog, format, v...)
}

func Debug(format string, v ...interface{}) {
	logAt(debugLog, format, v...)
}
