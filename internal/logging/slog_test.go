package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONLogger_EmitsAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf)

	log.Info(context.Background(), "fetch complete", "count", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "fetch complete", rec["msg"])
	require.EqualValues(t, 3, rec["count"])
}

func TestWith_AddsPersistentFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf).With("component", "store")

	log.Warn(context.Background(), "stale response discarded")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "store", rec["component"])
}
