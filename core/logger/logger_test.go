package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoip/echoip/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json formatter emits parseable records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("app", "test")),
		)

		log.Info("hello", logger.Component("server"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "test", record["app"])
		assert.Equal(t, "server", record["component"])
	})

	t.Run("default level filters debug records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("invisible")
		assert.Empty(t, buf.String())

		log.Info("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("development preset logs debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("echoip"), logger.WithOutput(&buf))

		log.Debug("details")
		assert.Contains(t, buf.String(), "details")
		assert.Contains(t, buf.String(), "echoip")
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error attr wraps non-nil errors", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("nil error yields an empty attr", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("empty conn id yields an empty attr", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.Attr{}, logger.ConnID(""))
	})
}
