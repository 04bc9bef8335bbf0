package correlator

import (
	"sort"

	"dex-decoder-sol/internal/logic/decoder"
)

// CorrelatedRecord 是一条请求指令与其结果事件（可能为空）的组合，交给下游 sink
type CorrelatedRecord struct {
	Instruction *decoder.DecodedInstruction
	Result      *decoder.DecodedEvent
}

// Correlate 为每条请求指令配对结果事件，规则按优先级：
//  1. 紧随其后（ordinal + 1）的同程序自调用事件；
//  2. 不早于请求位置、尚未被占用的同程序事件中 (ordinal, line) 最小者；
//  3. 找不到时只输出请求本身。
//
// 每个事件最多配对一次，未被配对的事件单独返回。
func Correlate(instrs []*decoder.DecodedInstruction, events []*decoder.DecodedEvent) ([]*CorrelatedRecord, []*decoder.DecodedEvent) {
	requests := make([]*decoder.DecodedInstruction, len(instrs))
	copy(requests, instrs)
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].Ordinal < requests[j].Ordinal
	})

	ordered := make([]*decoder.DecodedEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Before(ordered[j])
	})

	consumed := make([]bool, len(ordered))
	records := make([]*CorrelatedRecord, 0, len(requests))
	for _, ins := range requests {
		rec := &CorrelatedRecord{Instruction: ins}
		if len(ins.Results) > 0 {
			if k := pick(ins, ordered, consumed); k >= 0 {
				consumed[k] = true
				rec.Result = ordered[k]
			}
		}
		records = append(records, rec)
	}

	var unpaired []*decoder.DecodedEvent
	for k, ev := range ordered {
		if !consumed[k] {
			unpaired = append(unpaired, ev)
		}
	}
	return records, unpaired
}

func pick(ins *decoder.DecodedInstruction, events []*decoder.DecodedEvent, consumed []bool) int {
	// 1. 自调用事件紧跟在请求之后
	for k, ev := range events {
		if !consumed[k] && matches(ins, ev) &&
			ev.Source == decoder.SourceSelfCPI && ev.Ordinal == ins.Ordinal+1 {
			return k
		}
	}

	// 2. events 已按 (ordinal, line) 排序，取第一个位置不早于请求的
	for k, ev := range events {
		if consumed[k] || ev.Ordinal < 0 || !matches(ins, ev) {
			continue
		}
		if ev.Ordinal >= ins.Ordinal {
			return k
		}
	}
	return -1
}

func matches(ins *decoder.DecodedInstruction, ev *decoder.DecodedEvent) bool {
	return ev.ProgramID == ins.ProgramID && ins.ExpectsResult(ev.Variant)
}
