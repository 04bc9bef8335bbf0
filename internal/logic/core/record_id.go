package core

// BuildRecordID 构造 slot 内唯一的记录 ID（uint64）：
//
//	[ 24 bits txIndex ] [ 20 bits ordinal ] [ 20 bits (logIndex + 1) ]
//
// ordinal 为指令执行序号，logIndex 为事件所在日志行号，来自 self-CPI 指令或无日志时为 -1。
func BuildRecordID(txIndex uint32, ordinal int, logIndex int) uint64 {
	const mask20 = 1<<20 - 1
	return uint64(txIndex&(1<<24-1))<<40 |
		uint64(ordinal&mask20)<<20 |
		uint64((logIndex+1)&mask20)
}
