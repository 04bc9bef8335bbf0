// Package decodertest 提供构造指令 / 事件测试数据的工具，只在测试中使用。
package decodertest

import (
	"encoding/base64"
	"encoding/binary"

	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/types"
)

// Payload 按小端拼接测试数据
type Payload []byte

func New(disc []byte) Payload {
	return append(Payload{}, disc...)
}

func (p Payload) U8(v uint8) Payload { return append(p, v) }

func (p Payload) U16(v uint16) Payload { return binary.LittleEndian.AppendUint16(p, v) }

func (p Payload) U32(v uint32) Payload { return binary.LittleEndian.AppendUint32(p, v) }

func (p Payload) U64(v uint64) Payload { return binary.LittleEndian.AppendUint64(p, v) }

func (p Payload) I32(v int32) Payload { return p.U32(uint32(v)) }

func (p Payload) I64(v int64) Payload { return p.U64(uint64(v)) }

// U128 以 lo / hi 两个 u64 写入
func (p Payload) U128(lo, hi uint64) Payload { return p.U64(lo).U64(hi) }

func (p Payload) Bool(b bool) Payload {
	if b {
		return append(p, 1)
	}
	return append(p, 0)
}

func (p Payload) Key(k types.Pubkey) Payload { return append(p, k[:]...) }

// Str 写入 borsh 字符串（u32 长度前缀）
func (p Payload) Str(s string) Payload { return append(p.U32(uint32(len(s))), s...) }

func (p Payload) Bytes() []byte { return []byte(p) }

// Base64 返回 "Program data:" 格式使用的编码
func (p Payload) Base64() string { return base64.StdEncoding.EncodeToString(p) }

// SelfCPI 在事件前加上 Anchor 自调用前缀
func (p Payload) SelfCPI() []byte {
	return append(append([]byte{}, consts.AnchorEventTag...), p...)
}

// Key 生成每个字节都为 b 的地址
func Key(b byte) types.Pubkey {
	var k types.Pubkey
	for i := range k {
		k[i] = b
	}
	return k
}

// Keys 生成 n 个互不相同的地址，第 i 个为 Key(i+1)
func Keys(n int) []types.Pubkey {
	keys := make([]types.Pubkey, n)
	for i := range keys {
		keys[i] = Key(byte(i + 1))
	}
	return keys
}

// Node 构造一条指令
func Node(program types.Pubkey, ordinal, height int, data []byte, accounts []types.Pubkey) *core.InstructionNode {
	return &core.InstructionNode{
		Ordinal:     ordinal,
		Parent:      -1,
		StackHeight: height,
		IsRoot:      height == 0,
		ProgramID:   program,
		Accounts:    accounts,
		Data:        data,
	}
}
