package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLevel      = "info"
	defaultMaxSizeMB  = 64
	defaultMaxBackups = 4
)

// Config holds the logging settings, usually decoded from the [log]
// table of a toml file
type Config struct {
	Level      string `toml:"level"`       // debug, info, warn, error
	File       string `toml:"file"`        // empty means stderr
	MaxSizeMB  int    `toml:"max_size_mb"` // rotate after this many megabytes
	MaxBackups int    `toml:"max_backups"` // rotated files to keep
}

// checkConfig fills in any missing options
func checkConfig(conf *Config) *Config {
	if conf == nil {
		conf = new(Config)
	}
	if conf.Level == "" {
		conf.Level = defaultLevel
	}
	if conf.MaxSizeMB <= 0 {
		conf.MaxSizeMB = defaultMaxSizeMB
	}
	if conf.MaxBackups <= 0 {
		conf.MaxBackups = defaultMaxBackups
	}
	return conf
}

// New builds a console encoded zap logger. When conf.File is set the
// output goes to a size rotated file instead of stderr.
func New(conf *Config) (*zap.Logger, error) {
	conf = checkConfig(conf)
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
		return nil, errors.Wrapf(err, "logger: bad level %q", conf.Level)
	}
	var w io.Writer = os.Stderr
	if conf.File != "" {
		w = &lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
		}
	}
	return NewWithWriter(w, level), nil
}

// NewWithWriter builds a console encoded logger writing to w
func NewWithWriter(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller())
}
