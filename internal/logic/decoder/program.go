package decoder

import (
	"bytes"
	"fmt"

	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/types"
)

// LogMode 选择日志调用深度的重建方式
type LogMode uint8

const (
	// LogModeExplicit 依赖 invoke [n] 与 success / failed 标记：
	// 目标程序 invoke 时激活，目标程序 terminal 时失活，深度取自日志行。
	LogModeExplicit LogMode = iota
	// LogModeStackHeight 深度取自对应指令的 StackHeight，
	// 从目标程序 invoke 开始激活，遇到任意 terminal 或其它程序的 invoke 即失活。
	LogModeStackHeight
)

func (m LogMode) String() string {
	if m == LogModeStackHeight {
		return "stack_height"
	}
	return "explicit"
}

// LogConvention 是程序的日志深度约定，DepthBase 为日志中 invoke [n] 的起始值
type LogConvention struct {
	Mode      LogMode
	DepthBase int
}

// EventSource 标识事件载荷的来源，可组合
type EventSource uint8

const (
	SourceLogData EventSource = 1 << iota // "Program data: <base64>"
	SourceLogText                         // "Program log: <prefix><base64>"
	SourceSelfCPI                         // Anchor emit_cpi! 自调用指令
)

func (s EventSource) String() string {
	switch s {
	case SourceLogData:
		return "log_data"
	case SourceLogText:
		return "log_text"
	case SourceSelfCPI:
		return "self_cpi"
	}
	return fmt.Sprintf("source(%d)", uint8(s))
}

// Program 是一个目标程序的静态解码配置，注册后只读
type Program struct {
	ID           types.Pubkey
	Name         string
	Instructions *InstructionTable
	Events       *EventTable
	Log          LogConvention
	Sources      EventSource
	TextPrefix   string // SourceLogText 使用，例如 "ray_log: "
}

func (p *Program) Has(src EventSource) bool {
	return p.Sources&src != 0
}

// HasLogSource 是否需要遍历日志
func (p *Program) HasLogSource() bool {
	return p.Events != nil && p.Has(SourceLogData|SourceLogText)
}

// IsSelfCPIEvent 判断指令数据是否为 Anchor 自调用事件
func (p *Program) IsSelfCPIEvent(data []byte) bool {
	return p.Has(SourceSelfCPI) && bytes.HasPrefix(data, consts.AnchorEventTag)
}

// DecodeInstruction 解码一条属于本程序的指令，失败（包括 panic）统一返回 ErrNoMatch
func (p *Program) DecodeInstruction(node *core.InstructionNode) (ix *DecodedInstruction, err error) {
	defer func() {
		if r := recover(); r != nil {
			ix, err = nil, fmt.Errorf("%w: %s panic: %v", ErrNoMatch, p.Name, r)
		}
	}()

	if p.Instructions == nil {
		return nil, ErrNoMatch
	}
	m, err := p.Instructions.Decode(node.Data, node.Accounts)
	if err != nil {
		return nil, err
	}
	return &DecodedInstruction{
		ProgramID:  p.ID,
		Program:    p.Name,
		Variant:    m.Spec.Name,
		Depth:      node.StackHeight,
		Ordinal:    node.Ordinal,
		IxIndex:    node.IxIndex,
		InnerIndex: node.InnerIndex,
		Fields:     m.Fields,
		Accounts:   m.Accounts,
		Results:    m.Spec.Results,
	}, nil
}

// DecodeEvent 解码事件载荷（已去掉 base64 / 自调用前缀），位置信息由调用方填充
func (p *Program) DecodeEvent(payload []byte, src EventSource) (ev *DecodedEvent, err error) {
	defer func() {
		if r := recover(); r != nil {
			ev, err = nil, fmt.Errorf("%w: %s panic: %v", ErrNoMatch, p.Name, r)
		}
	}()

	if p.Events == nil {
		return nil, ErrNoMatch
	}
	m, err := p.Events.Decode(payload)
	if err != nil {
		return nil, err
	}
	return &DecodedEvent{
		ProgramID: p.ID,
		Program:   p.Name,
		Variant:   m.Spec.Name,
		Version:   m.Version,
		Source:    src,
		Ordinal:   -1,
		LogIndex:  -1,
		Fields:    m.Fields,
	}, nil
}

// DecodeSelfCPIEvent 解码 emit_cpi! 指令，深度与位置取自该指令
func (p *Program) DecodeSelfCPIEvent(node *core.InstructionNode) (*DecodedEvent, error) {
	ev, err := p.DecodeEvent(node.Data[len(consts.AnchorEventTag):], SourceSelfCPI)
	if err != nil {
		return nil, err
	}
	ev.Depth = node.StackHeight
	ev.Ordinal = node.Ordinal
	return ev, nil
}

func (p *Program) validate() error {
	if p.Name == "" {
		return fmt.Errorf("program %s: empty name", p.ID)
	}
	if p.Instructions == nil && p.Events == nil {
		return fmt.Errorf("program %s: no tables", p.Name)
	}
	if p.Has(SourceLogText) && p.TextPrefix == "" {
		return fmt.Errorf("program %s: text event source without prefix", p.Name)
	}
	if p.Has(SourceSelfCPI) && p.Instructions != nil {
		if err := checkDiscriminators(append(p.Instructions.discriminators(), consts.AnchorEventTag)); err != nil {
			return fmt.Errorf("program %s: %w", p.Name, err)
		}
	}
	return nil
}
