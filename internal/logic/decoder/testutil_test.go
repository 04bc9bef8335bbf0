package decoder

import (
	"encoding/binary"

	"dex-decoder-sol/internal/types"
)

// payload 按小端拼接测试数据
type payload []byte

func (p payload) u8(v uint8) payload { return append(p, v) }

func (p payload) u32(v uint32) payload {
	return binary.LittleEndian.AppendUint32(p, v)
}

func (p payload) u64(v uint64) payload {
	return binary.LittleEndian.AppendUint64(p, v)
}

func (p payload) i32(v int32) payload { return p.u32(uint32(v)) }

func (p payload) u128(lo, hi uint64) payload { return p.u64(lo).u64(hi) }

func (p payload) key(k types.Pubkey) payload { return append(p, k[:]...) }

func (p payload) str(s string) payload { return append(p.u32(uint32(len(s))), s...) }

func testKey(b byte) types.Pubkey {
	var k types.Pubkey
	for i := range k {
		k[i] = b
	}
	return k
}
