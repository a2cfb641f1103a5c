package reflectutil_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moebuff/lang/pkg/reflectutil"
)

type Base struct {
	ID        int
	createdBy string
}

type Account struct {
	Base
	Name     string
	password string
	Region   string `member:"final"`
	_        int
	Owner    *Account
}

type Audited struct {
	*Base
	Label string
}

type left struct{ Code string }
type right struct{ Code string }

type Ambiguous struct {
	left
	right
}

var accountType = reflect.TypeFor[Account]()

func requireFieldError(t *testing.T, err error, kind error, name string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)

	var fe *reflectutil.FieldError
	require.True(t, errors.As(err, &fe), "expected *reflectutil.FieldError, got %T", err)
	assert.Equal(t, name, fe.Name)
}

func TestGetField(t *testing.T) {
	t.Run("exported field", func(t *testing.T) {
		f, err := reflectutil.GetField(accountType, "Name")
		require.NoError(t, err)

		assert.Equal(t, "Name", f.Name())
		assert.Equal(t, accountType, f.DeclaringType())
		assert.Equal(t, accountType, f.Owner())
		assert.Equal(t, reflect.TypeFor[string](), f.Type())
		assert.False(t, f.IsPromoted())
		assert.True(t, reflectutil.IsAccessible(f))
		assert.False(t, reflectutil.IsFinal(f))
	})

	t.Run("unexported field is forced accessible", func(t *testing.T) {
		f, err := reflectutil.GetField(accountType, "password")
		require.NoError(t, err)

		assert.False(t, f.DeclaredModifiers().IsPublic())
		assert.True(t, f.Modifiers().IsPublic())
		assert.True(t, reflectutil.IsAccessible(f))
	})

	t.Run("promoted fields", func(t *testing.T) {
		id, err := reflectutil.GetField(accountType, "ID")
		require.NoError(t, err)
		assert.True(t, id.IsPromoted())
		assert.Equal(t, reflect.TypeFor[Base](), id.DeclaringType())
		assert.Equal(t, accountType, id.Owner())
		assert.Equal(t, []int{0, 0}, id.Index())

		createdBy, err := reflectutil.GetField(accountType, "createdBy")
		require.NoError(t, err)
		assert.True(t, reflectutil.IsAccessible(createdBy))
	})

	t.Run("promoted through embedded pointer", func(t *testing.T) {
		f, err := reflectutil.GetField(reflect.TypeFor[Audited](), "ID")
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[Base](), f.DeclaringType())
	})

	t.Run("final field", func(t *testing.T) {
		f, err := reflectutil.GetField(accountType, "Region")
		require.NoError(t, err)
		assert.True(t, reflectutil.IsFinal(f))
		assert.Equal(t, `member:"final"`, string(f.Tag()))
	})

	t.Run("pointer type is dereferenced", func(t *testing.T) {
		f, err := reflectutil.GetField(reflect.TypeFor[**Account](), "Name")
		require.NoError(t, err)
		assert.Equal(t, accountType, f.Owner())
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := reflectutil.GetField(accountType, "Email")
		requireFieldError(t, err, reflectutil.ErrNotFound, "Email")
		assert.Equal(t, `field not found "Email" on reflectutil_test.Account`, err.Error())
	})

	t.Run("blank identifier", func(t *testing.T) {
		_, err := reflectutil.GetField(accountType, "_")
		requireFieldError(t, err, reflectutil.ErrNotFound, "_")
	})

	t.Run("ambiguous promoted name", func(t *testing.T) {
		_, err := reflectutil.GetField(reflect.TypeFor[Ambiguous](), "Code")
		requireFieldError(t, err, reflectutil.ErrNotFound, "Code")
	})

	t.Run("non-struct type", func(t *testing.T) {
		_, err := reflectutil.GetField(reflect.TypeFor[int](), "Name")
		requireFieldError(t, err, reflectutil.ErrNotFound, "Name")
	})

	t.Run("nil type", func(t *testing.T) {
		_, err := reflectutil.GetField(nil, "Name")
		requireFieldError(t, err, reflectutil.ErrNilType, "Name")
	})
}

func TestGetDeclaredField(t *testing.T) {
	t.Run("declared fields", func(t *testing.T) {
		for _, name := range []string{"Base", "Name", "password", "Region", "Owner"} {
			f, err := reflectutil.GetDeclaredField(accountType, name)
			require.NoError(t, err, name)
			assert.Equal(t, name, f.Name())
			assert.True(t, reflectutil.IsAccessible(f), name)
		}
	})

	t.Run("promoted fields are excluded", func(t *testing.T) {
		_, err := reflectutil.GetDeclaredField(accountType, "ID")
		requireFieldError(t, err, reflectutil.ErrNotFound, "ID")

		_, err = reflectutil.GetDeclaredField(accountType, "createdBy")
		requireFieldError(t, err, reflectutil.ErrNotFound, "createdBy")
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := reflectutil.GetDeclaredField(accountType, "Email")
		requireFieldError(t, err, reflectutil.ErrNotFound, "Email")
	})

	t.Run("blank identifier", func(t *testing.T) {
		_, err := reflectutil.GetDeclaredField(accountType, "_")
		requireFieldError(t, err, reflectutil.ErrNotFound, "_")
	})

	t.Run("nil type", func(t *testing.T) {
		_, err := reflectutil.GetDeclaredField(nil, "Name")
		assert.ErrorIs(t, err, reflectutil.ErrNilType)
	})
}

func TestDeclaredFields(t *testing.T) {
	fields, err := reflectutil.DeclaredFields(reflect.TypeFor[*Account]())
	require.NoError(t, err)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"Base", "Name", "password", "Region", "_", "Owner"}, names)

	byName := func(name string) *reflectutil.Field {
		for _, f := range fields {
			if f.Name() == name {
				return f
			}
		}
		return nil
	}

	assert.True(t, reflectutil.IsAccessible(byName("Name")))
	assert.False(t, reflectutil.IsAccessible(byName("password")), "declared modifiers are not forced")
	assert.True(t, reflectutil.IsFinal(byName("Region")))

	blank := byName("_")
	require.NotNil(t, blank)
	assert.True(t, blank.IsSynthetic())
	assert.False(t, reflectutil.IsAccessible(blank))

	t.Run("non-struct type has no fields", func(t *testing.T) {
		fields, err := reflectutil.DeclaredFields(reflect.TypeFor[string]())
		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	t.Run("nil type", func(t *testing.T) {
		_, err := reflectutil.DeclaredFields(nil)
		assert.ErrorIs(t, err, reflectutil.ErrNilType)
	})
}

func TestFieldOf(t *testing.T) {
	f, err := reflectutil.FieldOf[Account]("password")
	require.NoError(t, err)
	assert.Equal(t, "password", f.Name())
	assert.True(t, reflectutil.IsAccessible(f))

	_, err = reflectutil.FieldOf[Account]("missing")
	assert.ErrorIs(t, err, reflectutil.ErrNotFound)
}
