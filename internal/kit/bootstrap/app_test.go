package bootstrap

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("prod uses json", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "prod").Info("hello", "economy", "memory")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, "memory", line["economy"])
	})

	t.Run("local uses text", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "local").Info("hello", "economy", "memory")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "economy=memory")
	})
}
