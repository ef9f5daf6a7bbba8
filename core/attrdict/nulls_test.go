package attrdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNullLike(t *testing.T) {
	nullish := []any{nil, "", []string{}, []any{}, map[string]any{}, New()}
	for _, v := range nullish {
		assert.True(t, IsNullLike(v), "%#v should be null-like", v)
	}

	solid := []any{"str", -1, 0, 1.0, []int{0}, map[string]any{"k": nil}, false}
	for _, v := range solid {
		assert.False(t, IsNullLike(v), "%#v should not be null-like", v)
	}
}

func TestHasNullValue(t *testing.T) {
	d, err := FromMap(map[string]any{
		"empty":   "",
		"listy":   []any{},
		"genome":  "hg38",
		"nothing": nil,
	})
	require.NoError(t, err)

	assert.True(t, HasNullValue("empty", d))
	assert.True(t, HasNullValue("listy", d))
	assert.True(t, HasNullValue("nothing", d))
	assert.False(t, HasNullValue("genome", d))
	assert.False(t, HasNullValue("absent", d), "absent key is not a null value")

	assert.True(t, NonNullValue("genome", d))
	assert.False(t, NonNullValue("empty", d))
	assert.False(t, NonNullValue("absent", d))
}

func TestMapNullHelpers(t *testing.T) {
	m := map[string]any{"a": "", "b": "x"}
	assert.True(t, MapHasNullValue("a", m))
	assert.False(t, MapHasNullValue("b", m))
	assert.True(t, MapNonNullValue("b", m))
	assert.False(t, MapNonNullValue("c", m))
}
