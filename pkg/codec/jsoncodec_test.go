package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalNoEscapeNoNewline(t *testing.T) {
	out, err := JSONStrict.Marshal(map[string]any{"html": "<b>&</b>"})
	require.NoError(t, err)
	assert.Equal(t, `{"html":"<b>&</b>"}`, string(out))
}

func TestUnmarshal(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	var p payload
	require.NoError(t, JSONStrict.Unmarshal([]byte(`{"name":"a"}`), &p))
	assert.Equal(t, "a", p.Name)

	assert.Error(t, JSONStrict.Unmarshal([]byte(`{"name":"a","extra":1}`), &p))
	require.NoError(t, JSONLoose.Unmarshal([]byte(`{"name":"b","extra":1}`), &p))
	assert.Equal(t, "b", p.Name)

	assert.ErrorContains(t, JSONLoose.Unmarshal([]byte(`{"name":"a"} {}`), &p), "trailing")
	assert.Error(t, JSONLoose.Unmarshal([]byte(`}{`), &p))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", JSONStrict.ContentType())
	assert.Equal(t, "application/json", JSONLoose.ContentType())
}
