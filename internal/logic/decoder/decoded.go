package decoder

import "dex-decoder-sol/internal/types"

// DecodedInstruction 是一条匹配成功的指令
type DecodedInstruction struct {
	ProgramID  types.Pubkey
	Program    string
	Variant    string // 匹配的指令形态
	Depth      int    // StackHeight，0 为主指令
	Ordinal    int
	IxIndex    uint16
	InnerIndex uint16
	Fields     Fields
	Accounts   AccountMap
	Results    []string // 可配对的结果事件名
}

// ExpectsResult 判断 variant 是否为该指令的结果事件
func (d *DecodedInstruction) ExpectsResult(variant string) bool {
	for _, r := range d.Results {
		if r == variant {
			return true
		}
	}
	return false
}

// DecodedEvent 是一条匹配成功的事件
type DecodedEvent struct {
	ProgramID types.Pubkey
	Program   string
	Variant   string
	Version   int // 匹配的布局版本，从 1 开始
	Depth     int // 发出事件时的调用深度
	Ordinal   int // 发出事件的指令序号，未知为 -1
	LogIndex  int // 所在日志行号，自调用事件为 -1
	Source    EventSource
	Fields    Fields
}

// Before 按 (Ordinal, LogIndex) 排序，位置未知的事件排在最后
func (e *DecodedEvent) Before(other *DecodedEvent) bool {
	if (e.Ordinal < 0) != (other.Ordinal < 0) {
		return e.Ordinal >= 0
	}
	if e.Ordinal != other.Ordinal {
		return e.Ordinal < other.Ordinal
	}
	return e.LogIndex < other.LogIndex
}
