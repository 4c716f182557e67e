package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func Test_newModuleEncoder(t *testing.T) {
	tests := []struct {
		arg  string
		want moduleEncoder
	}{
		{
			arg: "expr",
			want: moduleEncoder{
				level: zapcore.ErrorLevel,
				modules: map[string]zapcore.Level{
					"expr": zapcore.DebugLevel,
				},
			},
		}, {
			arg:  "warn",
			want: moduleEncoder{level: zapcore.WarnLevel},
		}, {
			arg:  "WARN",
			want: moduleEncoder{level: zapcore.WarnLevel},
		}, {
			arg:  "off",
			want: moduleEncoder{level: zapcore.DebugLevel - 1},
		}, {
			arg: "info,server=warn",
			want: moduleEncoder{
				level: zapcore.InfoLevel,
				modules: map[string]zapcore.Level{
					"server": zapcore.WarnLevel,
				},
			},
		}, {
			arg: "error,calculator=off,bogus=loud",
			want: moduleEncoder{
				level: zapcore.ErrorLevel,
				modules: map[string]zapcore.Level{
					"calculator": zapcore.DebugLevel - 1,
				},
			},
		},
	}
	defer os.Unsetenv(EnvVar)
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			os.Setenv(EnvVar, tt.arg)
			got, err := newModuleEncoder(zapcore.EncoderConfig{})
			require.NoError(t, err)
			me := got.(moduleEncoder)
			if tt.want.modules == nil {
				tt.want.modules = map[string]zapcore.Level{}
			}
			require.Equal(t, tt.want.level, me.level)
			require.Equal(t, tt.want.modules, me.modules)
		})
	}
}

func TestModuleEncoder_EncodeEntry(t *testing.T) {
	me := moduleEncoder{
		Encoder: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{MessageKey: "msg"}),
		level:   zapcore.ErrorLevel,
		modules: map[string]zapcore.Level{"expr": zapcore.DebugLevel},
	}
	entry := func(path string) zapcore.Entry {
		return zapcore.Entry{
			Level:   zapcore.DebugLevel,
			Message: "hi",
			Caller:  zapcore.NewEntryCaller(0, path, 10, true),
		}
	}

	line, err := me.EncodeEntry(entry("/src/calc/internal/expr/convert.go"), nil)
	require.NoError(t, err)
	require.Contains(t, line.String(), "hi")

	line, err = me.EncodeEntry(entry("/src/calc/internal/server/server.go"), nil)
	require.NoError(t, err)
	require.Equal(t, "", line.String())
}
