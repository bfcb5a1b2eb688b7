package loggers

import (
	"fmt"
	"log"
	"sync"

	"github.com/spf13/viper"
	"github.com/spiceai/jaxr/pkg/config"
	"github.com/spiceai/jaxr/pkg/jaxr"
	"github.com/spiceai/jaxr/pkg/version"
	"go.uber.org/zap"
)

var (
	zapLogger     *zap.Logger
	zapLoggerOnce sync.Once
)

func ZapLogger() *zap.Logger {
	zapLoggerOnce.Do(func() {
		debug := false
		cfg, err := config.LoadLoggingConfiguration(viper.New(), "")
		if err != nil {
			log.Println(fmt.Errorf("unable to load logging configuration: %w", err))
		} else {
			debug = cfg.Debug
		}

		var logger *zap.Logger
		if debug {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			// Fall back to standard logging
			log.Println(fmt.Errorf("unable to create Zap logger: %w", err))
			return
		}

		zapLogger = logger.With(zap.String("version", version.Version()))
	})

	return zapLogger
}

func ZapLoggerSync() {
	if zapLogger != nil {
		err := zapLogger.Sync()
		if err != nil {
			// Swallow errors in sync
			// https://github.com/uber-go/zap/issues/880
			return
		}
	}
}

// LogException logs err at error level, expanding registry exceptions into
// structured fields. A nil logger means the process-wide logger.
func LogException(logger *zap.Logger, msg string, err error) {
	if logger == nil {
		logger = ZapLogger()
	}
	if logger == nil {
		log.Println(fmt.Errorf("%s: %w", msg, err))
		return
	}

	logger.Error(msg, jaxr.Field(err))
}
