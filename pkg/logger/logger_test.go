//go:build unit

package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLogger_Logf(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Logf("test message")
	logger.Logf("test message with args: %s", "value")
}

func TestWriterLogger_Logf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)

	logger.Logf("scanned %d files", 3)
	logger.Logf("header: %s", "resource.h")

	assert.Equal(t, "scanned 3 files\nheader: resource.h\n", buf.String())
}

func TestWriterLogger_ThreadSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Logf("concurrent message from goroutine %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "concurrent message from goroutine "))
	}
}

func TestDefaultLogger_Logf(t *testing.T) {
	logger := NewDefaultLogger()

	// These should write to stdout
	logger.Logf("test message")
	logger.Logf("test message with args: %s", "value")
}
