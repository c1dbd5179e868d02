package flags_test

import (
	"testing"

	"github.com/mrdocs/mrdocs/cli/flags"
	"github.com/stretchr/testify/assert"
)

func TestPrefixEnvVars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"MRDOCS_LOG_LEVEL", "MRDOCS_NO_COLOR"}, flags.EnvVarsFor("log-level", "no-color"))
	assert.Equal(t, "MRDOCS_FETCH_DEST", flags.Prefix{flags.MrdocsPrefix}.Append("fetch").EnvVar("dest"))
	assert.Equal(t, "MRDOCS_TELEMETRY_TRACE_EXPORTER", flags.Prefix{"telemetry"}.Prepend(flags.MrdocsPrefix).EnvVar("trace-exporter"))
}
