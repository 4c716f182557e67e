package tracing

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	defer os.Unsetenv(EnvVar)

	os.Unsetenv(EnvVar)
	require.NoError(t, Setup())

	os.Setenv(EnvVar, "no-port")
	err := Setup()
	require.Error(t, err)
	require.Contains(t, err.Error(), EnvVar)
}

func TestTracer(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "span")
	defer span.End()
	// Never sampled without an agent.
	require.False(t, span.SpanContext().IsSampled())
}
