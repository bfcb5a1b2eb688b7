package loggers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spiceai/jaxr/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

func FormatTimestampedLogFileName(basename string) string {
	return fmt.Sprintf("%s-%s.log", basename, time.Now().UTC().Format("20060102T150405Z"))
}

func NewFileLogger(name string, cfg *config.LoggingConfiguration) (*zap.Logger, error) {
	if cfg == nil || cfg.Log.Dir == "" {
		return nil, errors.New("log directory is not configured")
	}

	logPath := filepath.Join(cfg.Log.Dir, "log")
	if _, err := os.Stat(logPath); err != nil {
		rootStat, err := os.Stat(cfg.Log.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to find log root '%s': %w", cfg.Log.Dir, err)
		}

		if err = os.MkdirAll(logPath, rootStat.Mode().Perm()); err != nil {
			return nil, fmt.Errorf("failed to create log path '%s': %w", logPath, err)
		}
	}

	logFilePath := filepath.Join(logPath, FormatTimestampedLogFileName(name))

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    cfg.Log.MaxSizeMB, // megabytes
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays, // days
	})

	level := zap.InfoLevel
	if cfg.Debug {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		w,
		level,
	)

	return zap.New(core), nil
}
