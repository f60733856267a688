// Package logging собирает hclog-логгеры для всех точек входа.
package logging

import (
	"io"
	"os"

	"go-atom-model/internal/config"

	"github.com/hashicorp/go-hclog"
)

// ParseLevel разбирает уровень логирования; пустая или неизвестная строка — info
func ParseLevel(s string) hclog.Level {
	level := hclog.LevelFromString(s)
	if level == hclog.NoLevel {
		return hclog.Info
	}
	return level
}

// New создаёт именованный логгер, уровень берётся из окружения
func New(name string) hclog.Logger {
	return NewWithOutput(name, os.Getenv(config.LogLevelEnv), os.Stderr)
}

// NewWithOutput — то же, но с явным уровнем и выводом
func NewWithOutput(name, level string, w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  ParseLevel(level),
		Output: w,
	})
}
