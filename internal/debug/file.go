package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileSink appends timestamped lines to a file.
type FileSink struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileSink opens path for appending, creating parent directories.
// If path is empty, uses "debug.log" in the current directory.
func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return &FileSink{file: f}, nil
}

// Debugf appends a formatted DEBUG line.
func (s *FileSink) Debugf(format string, args ...any) {
	s.write("DEBUG", format, args...)
}

// Infof appends a formatted INFO line.
func (s *FileSink) Infof(format string, args ...any) {
	s.write("INFO", format, args...)
}

func (s *FileSink) write(level, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(s.file, "[%s] %s %s\n", timestamp, level, msg)
}

// Close closes the underlying file. Later writes are dropped.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}
