package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	t.Run("tags caller and request id", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ServiceNumberKey, "SN-1001") //nolint:staticcheck
		ctx = context.WithValue(ctx, RequestIDKey, "req-1")                        //nolint:staticcheck

		l := WithContext(ctx)
		assert.Equal(t, "SN-1001", l.Data["caller"])
		assert.Equal(t, "req-1", l.Data["request_id"])
	})

	t.Run("unknown caller", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "unknown", l.Data["caller"])
		_, hasRequestID := l.Data["request_id"]
		assert.False(t, hasRequestID)
	})
}

func TestLoggerWritesFields(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	New().WithFields(map[string]interface{}{"team_id": 7}).Info("team updated")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "team updated", entry.Message)
	assert.Equal(t, 7, entry.Data["team_id"])
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
