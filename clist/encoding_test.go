package clist_test

import (
	"encoding/json"
	"testing"

	"github.com/on-the-ground/funstruct_go/clist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalJSON(t *testing.T) {
	out, err := json.Marshal(threeTwoOne())
	require.NoError(t, err)
	assert.JSONEq(t, `[3, 2, 1]`, string(out))

	out, err = json.Marshal(clist.Empty[int]())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))

	out, err = json.Marshal(clist.Of[any]("a", clist.Of(1, 2)))
	require.NoError(t, err)
	assert.JSONEq(t, `["a", [1, 2]]`, string(out))
}

func TestFromJSON(t *testing.T) {
	l, err := clist.FromJSON[int]([]byte(`[3, 2, 1]`))
	require.NoError(t, err)
	assertListEqual(t, threeTwoOne(), l)

	l, err = clist.FromJSON[int]([]byte(`[]`))
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())

	_, err = clist.FromJSON[int]([]byte(`{"not": "a list"}`))
	assert.Error(t, err)
}

func TestMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]clist.List[string]{
		"names": clist.Of("ada", "grace"),
		"none":  clist.Empty[string](),
	})
	require.NoError(t, err)
	assert.YAMLEq(t, "names: [ada, grace]\nnone: []\n", string(out))
}
