package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealJCS_Fingerprint(t *testing.T) {
	j := NewJCS()

	a, err := j.Fingerprint(map[string]interface{}{"b": 1, "a": []string{"x"}})
	require.NoError(t, err)

	b, err := j.Fingerprint(map[string]interface{}{"a": []string{"x"}, "b": 1.0})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	c, err := j.Fingerprint(map[string]interface{}{"a": []string{"y"}, "b": 1})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRealJCS_Transform(t *testing.T) {
	out, err := NewJCS().Transform([]byte(`{ "z": 1, "a": "b" }`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":"b","z":1}`, string(out))
}
