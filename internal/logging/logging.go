package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// NewServerLogger returns a production logger writing to stderr.
func NewServerLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// NewFileLogger returns a logger writing to the given file. The TUI owns
// the terminal, so its diagnostics must not go to stdout or stderr.
func NewFileLogger(path string) (*zap.Logger, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
