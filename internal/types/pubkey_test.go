package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyBase58RoundTrip(t *testing.T) {
	const addr = "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8"

	p, err := TryPubkeyFromBase58(addr)
	require.NoError(t, err)
	assert.Equal(t, addr, p.String())
	assert.Equal(t, p, PubkeyFromBase58(addr))
	assert.False(t, p.IsZero())
}

func TestTryPubkeyFromBase58_Invalid(t *testing.T) {
	_, err := TryPubkeyFromBase58("0OIl") // 非 base58 字符
	assert.Error(t, err)

	_, err = TryPubkeyFromBase58("3yZe7d") // 长度不足 32 字节
	assert.Error(t, err)

	assert.Panics(t, func() { PubkeyFromBase58("bad!") })
}

func TestPubkeyFromBytes(t *testing.T) {
	raw := make([]byte, PubkeyLen)
	raw[0] = 7
	p, err := PubkeyFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, byte(7), p[0])

	_, err = PubkeyFromBytes(raw[:31])
	assert.Error(t, err)
}

func TestHashFromBase58(t *testing.T) {
	var h Hash
	h[31] = 1
	parsed, err := HashFromBase58(h.String())
	require.NoError(t, err)
	assert.Equal(t, h, parsed)

	_, err = HashFromBase58("abc")
	assert.Error(t, err)
}
