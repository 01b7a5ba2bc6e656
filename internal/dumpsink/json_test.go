package dumpsink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONFieldAtRoot(t *testing.T) {
	j := NewJSON()
	j.BeginStruct("adts")
	j.Field("syncword", 0xFFF)
	j.EndStruct("adts")

	obj, ok := j.Object().(map[string]any)
	require.True(t, ok)
	require.Equal(t, int64(0xFFF), obj["syncword"])
}

func TestJSONArrayOfItems(t *testing.T) {
	j := NewJSON()
	j.BeginStruct("block")
	j.BeginArray("elements")
	j.BeginArrayItem()
	j.Field("tag", 1)
	j.EndArrayItem()
	j.BeginArrayItem()
	j.Field("tag", 2)
	j.EndArrayItem()
	j.EndArray("elements")
	j.EndStruct("block")

	obj := j.Object().(map[string]any)
	arr, ok := obj["elements"].([]any)
	require.True(t, ok)
	require.Len(t, arr, 2)
}

func TestExtractKeyStripsPathAndIndex(t *testing.T) {
	require.Equal(t, "sfb", extractKey("ics_info.sfb[3]"))
	require.Equal(t, "gain", extractKey("cce> gain"))
	require.Equal(t, "tag", extractKey("tag"))
}

func TestStackDepthExceeded(t *testing.T) {
	j := NewJSON()
	for i := 0; i < MaxStackDepth+1; i++ {
		j.BeginStruct("nested")
	}
	require.ErrorIs(t, j.Err(), ErrStackDepthExceeded)
}

func TestJSONStringMarshals(t *testing.T) {
	j := NewJSON()
	j.BeginStruct("asc")
	j.Field("aot", 2)
	j.EndStruct("asc")
	out, err := j.JSONString()
	require.NoError(t, err)
	require.Contains(t, string(out), `"aot":2`)
}
