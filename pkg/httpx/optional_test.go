package httpx_test

import (
	"encoding/json"
	"testing"

	"github.com/openrbac/rbac-admin/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestOptStringUnmarshal(t *testing.T) {
	type payload struct {
		Field httpx.OptString `json:"field"`
	}

	t.Run("absent key", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		require.False(t, p.Field.Set)
		require.Nil(t, p.Field.Value)
		require.Equal(t, "", p.Field.String())
	})

	t.Run("explicit null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"field":null}`), &p))
		require.True(t, p.Field.Set)
		require.Nil(t, p.Field.Value)
		require.Equal(t, "", p.Field.String())
	})

	t.Run("value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"field":"hello"}`), &p))
		require.True(t, p.Field.Set)
		require.NotNil(t, p.Field.Value)
		require.Equal(t, "hello", p.Field.String())
	})

	t.Run("empty string is a value, not null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"field":""}`), &p))
		require.True(t, p.Field.Set)
		require.NotNil(t, p.Field.Value)
		require.Equal(t, "", *p.Field.Value)
	})

	t.Run("non-string value errors", func(t *testing.T) {
		var p payload
		require.Error(t, json.Unmarshal([]byte(`{"field":5}`), &p))
	})
}
