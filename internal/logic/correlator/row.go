package correlator

import (
	"dex-decoder-sol/internal/logic/decoder"
)

// ResultPrefix 结果事件字段在 Row 中的前缀
const ResultPrefix = "result."

// Row 是交给 sink 的扁平记录，字段值统一为文本（账户 base58，整数十进制）
type Row struct {
	ProgramID string
	Program   string
	Depth     int
	Ordinal   int
	LogIndex  int // 事件所在日志行，指令记录为结果事件的行号，没有时为 -1
	Variant   string
	Version   int // 事件布局版本，纯指令记录为 0
	Fields    map[string]string
}

// Row 展开请求指令（账户 + 参数）与结果事件字段
func (r *CorrelatedRecord) Row() *Row {
	ins := r.Instruction
	fields := ins.Accounts.Map()
	for k, v := range ins.Fields.Map() {
		fields[k] = v
	}

	row := &Row{
		ProgramID: ins.ProgramID.String(),
		Program:   ins.Program,
		Depth:     ins.Depth,
		Ordinal:   ins.Ordinal,
		LogIndex:  -1,
		Variant:   ins.Variant,
		Fields:    fields,
	}
	if r.Result != nil {
		for k, v := range r.Result.Fields.Map() {
			fields[ResultPrefix+k] = v
		}
		row.LogIndex = r.Result.LogIndex
		row.Version = r.Result.Version
	}
	return row
}

// EventRow 未配对事件单独成行
func EventRow(ev *decoder.DecodedEvent) *Row {
	return &Row{
		ProgramID: ev.ProgramID.String(),
		Program:   ev.Program,
		Depth:     ev.Depth,
		Ordinal:   ev.Ordinal,
		LogIndex:  ev.LogIndex,
		Variant:   ev.Variant,
		Version:   ev.Version,
		Fields:    ev.Fields.Map(),
	}
}
