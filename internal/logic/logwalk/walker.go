package logwalk

import (
	"encoding/base64"
	"strings"

	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/logic/decoder"
	"dex-decoder-sol/internal/types"
)

// Target 描述一个需要从日志中提取事件的程序
type Target struct {
	ProgramID  types.Pubkey
	Convention decoder.LogConvention
	DataLines  bool   // 识别 "Program data: <base64>"
	TextPrefix string // 非空时识别 "Program log: <prefix><base64>"
}

// TargetOf 由程序注册配置构造 Target
func TargetOf(p *decoder.Program) Target {
	t := Target{
		ProgramID:  p.ID,
		Convention: p.Log,
		DataLines:  p.Has(decoder.SourceLogData),
	}
	if p.Has(decoder.SourceLogText) {
		t.TextPrefix = p.TextPrefix
	}
	return t
}

// Emission 是一条归属到目标程序的事件载荷（已 base64 解码）
type Emission struct {
	Payload   []byte
	Depth     int // 发出时的调用深度
	Ordinal   int // 发出事件的指令序号，无法对应到指令时为 -1
	LineIndex int
	Source    decoder.EventSource
}

// invokeCursor 将第 k 条 invoke 日志对应到执行顺序中的指令：
// 从游标开始找第一条同程序的指令，找不到时返回 -1 且游标不动。
type invokeCursor struct {
	nodes []*core.InstructionNode
	next  int
}

func (c *invokeCursor) advance(program types.Pubkey) int {
	for i := c.next; i < len(c.nodes); i++ {
		if c.nodes[i].ProgramID == program {
			c.next = i + 1
			return i
		}
	}
	return -1
}

// Walk 按行遍历一笔交易的日志，维护目标程序的单一激活标记，
// 返回激活期间出现的事件载荷。状态只存在于本次调用内。
func Walk(logs []core.LogLine, nodes []*core.InstructionNode, target Target) []Emission {
	var (
		out     []Emission
		cursor  = invokeCursor{nodes: nodes}
		active  bool
		depth   = -1
		ordinal = -1
		mode    = target.Convention.Mode
	)

	for _, l := range logs {
		line := ParseLine(l.Text)
		switch line.Kind {
		case LineInvoke:
			ord := cursor.advance(line.ProgramID)
			if line.ProgramID == target.ProgramID {
				active, ordinal = true, ord
				depth = target.depthOf(line, nodes, ord)
			} else if mode == decoder.LogModeStackHeight {
				active = false
			}

		case LineSuccess, LineFailed:
			if mode == decoder.LogModeStackHeight || line.ProgramID == target.ProgramID {
				active = false
			}

		case LineData:
			if active && target.DataLines {
				out = appendEmission(out, line.Body, decoder.SourceLogData, depth, ordinal, l.Index)
			}

		case LineLog:
			if active && target.TextPrefix != "" && strings.HasPrefix(line.Body, target.TextPrefix) {
				body := strings.TrimSpace(line.Body[len(target.TextPrefix):])
				out = appendEmission(out, body, decoder.SourceLogText, depth, ordinal, l.Index)
			}
		}
	}
	return out
}

func (t Target) depthOf(line Line, nodes []*core.InstructionNode, ordinal int) int {
	base := t.Convention.DepthBase
	if t.Convention.Mode == decoder.LogModeStackHeight {
		if ordinal >= 0 {
			return nodes[ordinal].StackHeight
		}
		if line.Depth >= 0 {
			return line.Depth - base
		}
		return -1
	}

	if line.Depth >= 0 {
		return line.Depth - base
	}
	if ordinal >= 0 {
		return nodes[ordinal].StackHeight
	}
	return -1
}

// appendEmission base64 解码失败的行直接忽略
func appendEmission(out []Emission, body string, src decoder.EventSource, depth, ordinal, index int) []Emission {
	payload, err := base64.StdEncoding.DecodeString(body)
	if err != nil || len(payload) == 0 {
		return out
	}
	return append(out, Emission{Payload: payload, Depth: depth, Ordinal: ordinal, LineIndex: index, Source: src})
}
