// Package logger 基于 zerolog 的进程日志
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"restaurant/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New 按配置创建日志实例并设置为全局 log.Logger
// format 为 console 时输出彩色可读格式，否则输出 JSON
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter 同 New，输出到指定 writer
func NewWithWriter(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05"}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Str("service", "restaurant").Logger()
	log.Logger = logger
	return logger
}
