package logger_test

import (
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moebuff/lang/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	attr := logger.Error(errors.New("boom"))
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestKind(t *testing.T) {
	attr := logger.Kind(errors.New("invalid argument"))
	require.Equal(t, "kind", attr.Key)
	assert.Equal(t, "invalid argument", attr.Value.String())

	assert.True(t, logger.Kind(nil).Equal(slog.Attr{}))
}

func TestMessageAndField(t *testing.T) {
	msg := logger.Message("MSG")
	assert.Equal(t, "message", msg.Key)
	assert.Equal(t, "MSG", msg.Value.String())

	field := logger.Field("name")
	assert.Equal(t, "field", field.Key)
	assert.Equal(t, "name", field.Value.String())

	component := logger.Component("validate")
	assert.Equal(t, "component", component.Key)
	assert.Equal(t, "validate", component.Value.String())
}

func TestType(t *testing.T) {
	type user struct{}

	attr := logger.Type(reflect.TypeFor[user]())
	require.Equal(t, "type", attr.Key)
	assert.Equal(t, "logger_test.user", attr.Value.String())

	assert.True(t, logger.Type(nil).Equal(slog.Attr{}))
}
