package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TUI_DEBUG"

var (
	mu      sync.Mutex
	logger  *log.Logger
	logFile *os.File
)

// Logger returns the shared debug logger, creating it on first use from
// TUI_DEBUG. If the variable is unset or the file cannot be opened, the
// logger discards everything.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		if err := initLocked(os.Getenv(EnvVar)); err != nil {
			logger = newLogger(io.Discard)
		}
	}
	return logger
}

// Init points debug logging at path. An empty path disables logging.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		logger = newLogger(io.Discard)
		return nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	logFile = f
	logger = newLogger(f)
	return nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "tui",
	})
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	Logger().Debugf(format, args...)
}
