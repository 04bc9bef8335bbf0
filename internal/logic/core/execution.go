package core

import (
	"dex-decoder-sol/internal/types"

	"github.com/mr-tron/base58"
)

// TxContext 表示交易所属区块的上下文信息
type TxContext struct {
	BlockTime   int64      // 区块时间戳（Unix 秒）
	Slot        uint64     // 当前 Slot
	ParentSlot  uint64     // 父 Slot（用于分叉与漏块检测）
	BlockHeight uint64     // 区块高度
	BlockHash   types.Hash // 区块哈希
}

// InstructionNode 表示调用树中的一条指令（主指令或 CPI 产生的 inner 指令）。
// 由 txadapter 按深度优先的执行顺序展平生成，构造后只读。
type InstructionNode struct {
	Ordinal     int            // 深度优先执行序号，从 0 开始，交易内唯一
	IxIndex     uint16         // 所属主指令索引
	InnerIndex  uint16         // 主指令内的 inner 序号，主指令本身为 0，CPI 从 1 开始
	Parent      int            // 父指令的 Ordinal，主指令为 -1
	StackHeight int            // 调用深度，0 表示主指令
	IsRoot      bool           // 是否为主指令
	ProgramID   types.Pubkey   // 被调用程序
	Accounts    []types.Pubkey // 账户列表，保持原始顺序
	Data        []byte         // 指令原始数据
}

// LogLine 表示交易日志中的一行以及它在日志序列中的位置
type LogLine struct {
	Index int
	Text  string
}

// Execution 表示一笔待解码的交易：展平后的指令序列、日志行以及执行元数据。
// 每笔交易构造一次，解码完成后丢弃，不跨交易共享。
type Execution struct {
	TxCtx     *TxContext
	TxIndex   uint32 // 交易在区块中的序号
	Signature []byte // 交易签名（64 字节原始数据），即执行的唯一标识

	Signer  types.Pubkey   // 付费签名者（accountKeys[0]）
	Signers []types.Pubkey // 全部签名者

	Fee          uint64  // 手续费（lamports）
	ComputeUnits *uint64 // 消耗的计算单元，旧区块可能缺失
	Succeeded    bool    // 交易是否执行成功
	ErrMessage   string  // 执行失败时的错误描述

	Instructions []*InstructionNode
	Logs         []LogLine
}

// SignatureString 返回 base58 编码的交易签名，用于日志
func (e *Execution) SignatureString() string {
	return base58.Encode(e.Signature)
}

// Node 按 Ordinal 取指令，越界返回 nil
func (e *Execution) Node(ordinal int) *InstructionNode {
	if ordinal < 0 || ordinal >= len(e.Instructions) {
		return nil
	}
	return e.Instructions[ordinal]
}

// LogsFromStrings 为原始日志数组补充行号
func LogsFromStrings(lines []string) []LogLine {
	logs := make([]LogLine, len(lines))
	for i, text := range lines {
		logs[i] = LogLine{Index: i, Text: text}
	}
	return logs
}
