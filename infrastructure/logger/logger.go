package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

const (
	defaultThresholdKB = 100 * 1000 // 100 MB logs by default.
	defaultMaxRolls    = 8          // keep 8 last logs by default.
)

type logWriter struct {
	io.WriteCloser
	logLevel Level
}

// Backend is a logging backend. Subsystems created from the backend write
// to the backend's writers. Backend provides atomic writes from all
// subsystems.
type Backend struct {
	mutex   sync.Mutex
	writers []logWriter
}

// NewBackend creates a new logger backend.
func NewBackend() *Backend {
	return &Backend{}
}

// AddLogWriter adds a type implementing io.WriteCloser which the log will
// write into on a certain log level.
func (b *Backend) AddLogWriter(writer io.WriteCloser, logLevel Level) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.writers = append(b.writers, logWriter{WriteCloser: writer, logLevel: logLevel})
}

// AddLogFile adds a file which the log will write into on a certain log
// level with the default log rotation settings. It'll create the file if
// it doesn't exist.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}
	r, err := rotator.New(logFile, defaultThresholdKB, false, defaultMaxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}
	b.AddLogWriter(r, logLevel)
	return nil
}

// Close finalizes all log writers.
func (b *Backend) Close() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for _, writer := range b.writers {
		writer.Close()
	}
	b.writers = nil
}

func (b *Backend) write(logLevel Level, subsystemTag string, message string) {
	formatted := fmt.Sprintf("%s [%s] %s: %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"), logLevel, subsystemTag, message)

	b.mutex.Lock()
	defer b.mutex.Unlock()
	for _, writer := range b.writers {
		if logLevel >= writer.logLevel {
			_, _ = io.WriteString(writer, formatted)
		}
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

var (
	backendMutex sync.Mutex
	backend      = NewBackend()
	subsystems   = make(map[string]*Logger)
)

func init() {
	backend.AddLogWriter(nopWriteCloser{os.Stdout}, LevelInfo)
}

// RegisterSubSystem returns the logger of the given subsystem tag,
// creating it on first use. Package-level log variables are expected to
// be initialized through this.
func RegisterSubSystem(subsystemTag string) *Logger {
	backendMutex.Lock()
	defer backendMutex.Unlock()
	logger, ok := subsystems[subsystemTag]
	if !ok {
		logger = &Logger{backend: backend, subsystemTag: subsystemTag, level: LevelInfo}
		subsystems[subsystemTag] = logger
	}
	return logger
}

// InitLogToFile attaches a rotating log file to the shared backend.
func InitLogToFile(logFile string, logLevel Level) error {
	return backend.AddLogFile(logFile, logLevel)
}

// SetLogLevels sets the logging level of all registered subsystems.
func SetLogLevels(logLevel Level) {
	backendMutex.Lock()
	defer backendMutex.Unlock()
	for _, logger := range subsystems {
		logger.SetLevel(logLevel)
	}
}

// ParseAndSetLogLevels parses a level string and applies it to all
// registered subsystems.
func ParseAndSetLogLevels(logLevel string) error {
	level, ok := LevelFromString(logLevel)
	if !ok {
		return errors.Errorf("unknown log level %s", logLevel)
	}
	SetLogLevels(level)
	return nil
}
