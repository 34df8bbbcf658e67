// Package logger builds zap loggers from a small file-oriented Config.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	// Path receives log output: "stderr", "stdout", or a file path.
	Path string
	// Mode controls how an existing log file is treated.  It is ignored
	// when Path is not a regular file.
	Mode  FileMode
	Level zapcore.Level
	// DevMode makes logs at DPanic level panic.
	DevMode bool
}

func New(conf Config) (*zap.Logger, error) {
	if conf.Path == "" {
		conf.Path = "stderr"
	}
	w, err := OpenFile(conf.Path, conf.Mode)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(jsonEncoder(), w, conf.Level)
	var opts []zap.Option
	if conf.DevMode {
		opts = append(opts, zap.Development())
	}
	return zap.New(core, opts...), nil
}

func jsonEncoder() zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.CallerKey = ""
	return zapcore.NewJSONEncoder(conf)
}
