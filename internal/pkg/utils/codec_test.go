package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestEncodeDecodeMessage(t *testing.T) {
	msg, err := structpb.NewStruct(map[string]any{"variant": "SwapBaseIn", "depth": 1})
	require.NoError(t, err)

	data, err := EncodeMessage(7, msg)
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 0, 0, 0}, data[:4])

	var out structpb.Struct
	msgType, err := DecodeMessage(data, &out)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), msgType)
	assert.Equal(t, "SwapBaseIn", out.Fields["variant"].GetStringValue())

	_, err = DecodeMessage([]byte{1}, &out)
	assert.Error(t, err)
}
