package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mrdocs/mrdocs/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected log.Level
		wantErr  bool
	}{
		{"info", log.InfoLevel, false},
		{"WARN", log.WarnLevel, false},
		{"trace", log.TraceLevel, false},
		{"verbose", log.Level(0), true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			level, err := log.ParseLevel(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "supported levels")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := log.New(log.WithOutput(&buf), log.WithLevel(log.WarnLevel))

	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")
	assert.Equal(t, log.WarnLevel, l.Level())
}

func TestLoggerWithFieldDoesNotLeak(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := log.New(log.WithOutput(&buf))
	l.WithField(log.FieldKeyComponent, "pulpcore").Info("first")
	l.Info("second")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "component=pulpcore")
	assert.NotContains(t, string(lines[1]), "component=")
}

func TestWithOptionsClones(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := log.New(log.WithOutput(&buf), log.WithLevel(log.InfoLevel))
	debug := l.WithOptions(log.WithLevel(log.DebugLevel))

	assert.Equal(t, log.InfoLevel, l.Level())
	assert.Equal(t, log.DebugLevel, debug.Level())
}

func TestLoggerFromContext(t *testing.T) {
	t.Parallel()

	l := log.New()
	ctx := log.ContextWithLogger(context.Background(), l)

	assert.Same(t, l, log.LoggerFromContext(ctx))
	assert.Same(t, log.Default(), log.LoggerFromContext(context.Background()))
}
