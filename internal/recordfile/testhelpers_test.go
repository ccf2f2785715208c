package recordfile_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// captureLogger records log lines so tests can assert on the diagnostic
// side channel without touching global state.
type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) logf(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+": "+fmt.Sprintf(format, args...))
}

func (l *captureLogger) Debugf(format string, args ...any) { l.logf("DEBUG", format, args...) }
func (l *captureLogger) Infof(format string, args ...any)  { l.logf("INFO", format, args...) }
func (l *captureLogger) Warnf(format string, args ...any)  { l.logf("WARN", format, args...) }
func (l *captureLogger) Errorf(format string, args ...any) { l.logf("ERROR", format, args...) }

func (l *captureLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// writeRaw drops raw bytes at a path inside dir, creating it.
func writeRaw(t *testing.T, dir, name string, b []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
