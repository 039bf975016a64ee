/*
 * logger.go, part of gospg
 *
 *
 * Copyright 2024 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation; either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License along
 *  with this program; if not, write to the Free Software Foundation, Inc.,
 *  51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 *
 *
 */

//Package logging is the structured logging used by gospg. The engine only
//sees the Logger interface; the zap implementation is built from a
//LogConfig by the command line tool.
package logging

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

func String(key, val string) Field { return Field{Key: key, Value: val} }

func Int(key string, val int) Field { return Field{Key: key, Value: val} }

func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }

func Bool(key string, val bool) Field { return Field{Key: key, Value: val} }

func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }

//Err puts err under the key "error". A nil error is logged as "<nil>".
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

//Any is for values none of the typed constructors cover.
func Any(key string, val interface{}) Field { return Field{Key: key, Value: val} }

//Logger is the logging interface taken by the engine and the tools.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	//With returns a child Logger that adds fields to every entry.
	With(fields ...Field) Logger
	//Named returns a child Logger with name appended to the parent's, after a dot.
	Named(name string) Logger
	//Sync flushes any buffered entry.
	Sync() error
}

//LogConfig holds the parameters to build a Logger.
type LogConfig struct {
	//Level is one of debug, info, warn, error. Anything else reads as info.
	Level string `mapstructure:"level" json:"level"`
	//Format is json or console. Anything else reads as json.
	Format string `mapstructure:"format" json:"format"`
	//OutputPaths defaults to stderr, so results on stdout stay clean.
	OutputPaths []string `mapstructure:"output_paths" json:"output_paths"`
}

type zapLogger struct {
	z *zap.Logger
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case float64:
			out = append(out, zap.Float64(f.Key, v))
		case bool:
			out = append(out, zap.Bool(f.Key, v))
		case time.Duration:
			out = append(out, zap.Duration(f.Key, v))
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}
	return out
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, toZapFields(fields)...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, toZapFields(fields)...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, toZapFields(fields)...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, toZapFields(fields)...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{z: l.z.With(toZapFields(fields)...)}
}

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{z: l.z.Named(name)}
}

func (l *zapLogger) Sync() error { return l.z.Sync() }

//ParseLevel converts a level name to a zap level. Unknown names give info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

//NewLogger builds a zap-backed Logger from cfg.
func NewLogger(cfg LogConfig) (Logger, error) {
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = []string{"stderr"}
	}
	encCfg := zap.NewProductionEncoderConfig()
	encoding := "json"
	if cfg.Format == "console" {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encoding = "console"
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(cfg.Level)),
		Development:      cfg.Format == "console",
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      cfg.OutputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}
	z, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logging: building zap logger: %w", err)
	}
	return &zapLogger{z: z}, nil
}

//NewLoggerFromCore wraps a zap core, mostly for tests with observed logs.
func NewLoggerFromCore(core zapcore.Core) Logger {
	return &zapLogger{z: zap.New(core, zap.AddCallerSkip(1))}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (n nopLogger) With(...Field) Logger { return n }
func (n nopLogger) Named(string) Logger  { return n }
func (nopLogger) Sync() error            { return nil }

//NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger { return nopLogger{} }
