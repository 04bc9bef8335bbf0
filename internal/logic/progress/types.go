package progress

// SlotStatus 表示 slot 的处理状态（Redis 中以整数存储）
type SlotStatus int

const (
	SlotUnknown   SlotStatus = 0 // Redis 不存在
	SlotProcessed SlotStatus = 1 // 已解码并发送成功
	SlotInvalid   SlotStatus = 2 // 结构错误，跳过
	SlotPending   SlotStatus = 3 // 处理中
)

func (s SlotStatus) String() string {
	switch s {
	case SlotProcessed:
		return "processed"
	case SlotInvalid:
		return "invalid"
	case SlotPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Done 已有最终结果，重放时跳过
func (s SlotStatus) Done() bool {
	return s == SlotProcessed || s == SlotInvalid
}

// Source 表示 slot 的来源
const (
	SourceUnknown int16 = 0
	SourceGrpc    int16 = 1
	SourceRpc     int16 = 2
	SourceReplay  int16 = 3
)

func SourceName(src int16) string {
	switch src {
	case SourceGrpc:
		return "grpc"
	case SourceRpc:
		return "rpc"
	case SourceReplay:
		return "replay"
	default:
		return "unknown"
	}
}
