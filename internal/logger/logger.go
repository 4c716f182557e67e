package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// EnvVar holds the log filter, eg: "info,expr=debug,server=off"
const EnvVar = "CALC_LOG"

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Encoding = "module"
	_ = zap.RegisterEncoder("module", newModuleEncoder)
	// this must be at debug level because we handle the level ourselves
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	logger, _ := cfg.Build()
	return logger.Sugar()
}

var (
	Logger = newLogger()
	Debugw = Logger.Debugw
	Info   = Logger.Info
)

func stringToLevel(str string) (zapcore.Level, bool) {
	for _, lvl := range []zapcore.Level{
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
		zapcore.PanicLevel,
		zapcore.FatalLevel} {
		if str == lvl.String() {
			return lvl, true
		}
	}
	if str == "off" {
		return zapcore.DebugLevel - 1, true
	}
	return 0, false
}

func newModuleEncoder(cfg zapcore.EncoderConfig) (zapcore.Encoder, error) {
	me := moduleEncoder{
		Encoder: zapcore.NewConsoleEncoder(cfg),
		level:   zapcore.ErrorLevel,
		modules: map[string]zapcore.Level{},
	}
	val := os.Getenv(EnvVar)
	if val == "" {
		return me, nil
	}

	for _, match := range strings.Split(strings.ToLower(val), ",") {
		lvl, found := stringToLevel(match)
		switch {
		case found: // this is just a level
			me.level = lvl
		case !strings.Contains(match, "="): // no equal and no level, so just a package name
			me.modules[match] = zapcore.DebugLevel
		default: // it's the package=level syntax, ignore if malformed
			parts := strings.Split(match, "=")
			if len(parts) == 2 {
				module, lvlString := parts[0], parts[1]
				if lvl, found := stringToLevel(lvlString); found {
					me.modules[module] = lvl
				}
			}
		}
	}
	return me, nil
}

// moduleEncoder drops entries below the level configured for the package
// that emitted them.
type moduleEncoder struct {
	zapcore.Encoder
	level   zapcore.Level
	modules map[string]zapcore.Level
}

func (me moduleEncoder) Clone() zapcore.Encoder {
	return moduleEncoder{
		Encoder: me.Encoder.Clone(),
		level:   me.level,
		modules: me.modules,
	}
}

func (me moduleEncoder) effectiveLevel(caller zapcore.EntryCaller) zapcore.Level {
	moduleWithFileAndLine := caller.TrimmedPath()
	if moduleWithFileAndLine == "undefined" {
		return me.level
	}
	if idx := strings.IndexRune(moduleWithFileAndLine, '/'); idx > 0 {
		if lvl, found := me.modules[moduleWithFileAndLine[:idx]]; found {
			return lvl
		}
	}
	return me.level
}

func (me moduleEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line, err := me.Encoder.EncodeEntry(entry, fields)
	if entry.Level < me.effectiveLevel(entry.Caller) {
		line.Reset() // return nothing
	}
	return line, err
}

func Print(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
}

