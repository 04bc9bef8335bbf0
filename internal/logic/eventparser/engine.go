package eventparser

import (
	"errors"
	"runtime/debug"

	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/logic/correlator"
	"dex-decoder-sol/internal/logic/decoder"
	"dex-decoder-sol/internal/logic/logwalk"
	"dex-decoder-sol/internal/pkg/logger"
)

// Result 是一笔交易的解码结果
type Result struct {
	Records []*correlator.CorrelatedRecord // 按指令执行顺序
	Events  []*decoder.DecodedEvent        // 没有配对到指令的事件，按 (ordinal, line) 排序
}

// Rows 展开为 sink 记录：先指令记录，后未配对事件
func (r *Result) Rows() []*correlator.Row {
	if r == nil {
		return nil
	}
	rows := make([]*correlator.Row, 0, len(r.Records)+len(r.Events))
	for _, rec := range r.Records {
		rows = append(rows, rec.Row())
	}
	for _, ev := range r.Events {
		rows = append(rows, correlator.EventRow(ev))
	}
	return rows
}

func (r *Result) Empty() bool {
	return r == nil || (len(r.Records) == 0 && len(r.Events) == 0)
}

// Engine 按静态注册表解码交易，自身无可变状态，可被多个 goroutine 共享
type Engine struct {
	registry *decoder.Registry
}

func NewEngine(registry *decoder.Registry) *Engine {
	return &Engine{registry: registry}
}

func (e *Engine) Registry() *decoder.Registry {
	return e.registry
}

// Decode 解码一笔交易：
//  1. 按执行顺序解码目标程序的指令与自调用事件；
//  2. 对出现在交易中的程序逐个遍历日志，解码日志事件；
//  3. 配对请求指令与结果事件。
//
// 单条指令 / 事件解码失败只跳过该条；panic 时返回已解码的部分。
func (e *Engine) Decode(exec *core.Execution) (result *Result) {
	var (
		instrs []*decoder.DecodedInstruction
		events []*decoder.DecodedEvent
	)
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[eventparser::Decode] panic tx=%s: %+v\nstack: %s", exec.SignatureString(), r, debug.Stack())
			// 已解码部分不再配对，原样输出
			result = &Result{Events: events}
			for _, ix := range instrs {
				result.Records = append(result.Records, &correlator.CorrelatedRecord{Instruction: ix})
			}
		}
	}()

	// 1. 指令与自调用事件
	var present []*decoder.Program
	seen := make(map[*decoder.Program]bool)
	for _, node := range exec.Instructions {
		p := e.registry.Lookup(node.ProgramID)
		if p == nil {
			continue
		}
		if !seen[p] {
			seen[p] = true
			present = append(present, p)
		}

		if p.IsSelfCPIEvent(node.Data) {
			ev, err := p.DecodeSelfCPIEvent(node)
			if err != nil {
				logNoMatch(exec, p, node.Ordinal, err)
				continue
			}
			events = append(events, ev)
			continue
		}

		ix, err := p.DecodeInstruction(node)
		if err != nil {
			logNoMatch(exec, p, node.Ordinal, err)
			continue
		}
		instrs = append(instrs, ix)
	}

	// 2. 日志事件，每个程序独立遍历
	for _, p := range present {
		if !p.HasLogSource() {
			continue
		}
		for _, em := range logwalk.Walk(exec.Logs, exec.Instructions, logwalk.TargetOf(p)) {
			ev, err := p.DecodeEvent(em.Payload, em.Source)
			if err != nil {
				logNoMatch(exec, p, em.Ordinal, err)
				continue
			}
			ev.Depth = em.Depth
			ev.Ordinal = em.Ordinal
			ev.LogIndex = em.LineIndex
			events = append(events, ev)
		}
	}

	// 3. 配对
	records, unpaired := correlator.Correlate(instrs, events)
	return &Result{Records: records, Events: unpaired}
}

func logNoMatch(exec *core.Execution, p *decoder.Program, ordinal int, err error) {
	if errors.Is(err, decoder.ErrNoMatch) && !errors.Is(err, decoder.ErrShortBuffer) && !errors.Is(err, decoder.ErrMissingAccount) {
		// 未注册的 discriminator 很常见，不记录
		return
	}
	logger.Debugf("[eventparser::Decode] %s skip ordinal=%d tx=%s: %v", p.Name, ordinal, exec.SignatureString(), err)
}
