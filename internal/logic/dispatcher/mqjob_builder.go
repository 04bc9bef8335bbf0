package dispatcher

import (
	"fmt"
	"strconv"

	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/logic/correlator"
	"dex-decoder-sol/internal/mq"
	"dex-decoder-sol/internal/pkg/utils"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"
)

// MsgTypeRows 是解码记录消息的类型前缀，消息体为 structpb.ListValue
const MsgTypeRows uint32 = 1

// Kafka 消息头
const (
	HeaderBatchID  = "batch_id" // 同一 slot 一次发送的所有消息共享
	HeaderSlot     = "slot"
	HeaderEncoding = "encoding" // 压缩时为 "zstd"，否则不设置

	EncodingZstd = "zstd"
)

// TxRows 是一笔交易的解码输出
type TxRows struct {
	Exec *core.Execution
	Rows []*correlator.Row
}

// JobOption 描述目标 topic 与发送方式
type JobOption struct {
	Topic      string
	Partitions int
	Compress   bool
}

// BuildRowKafkaJobs 将一个 slot 的解码记录按分区键分桶，每个非空分区构造一个 KafkaJob。
// 返回的 []*mq.KafkaJob 可直接传入 mq.SendKafkaJobs；第二个返回值为记录总数。
func BuildRowKafkaJobs(txCtx *core.TxContext, opt JobOption, txs []TxRows) ([]*mq.KafkaJob, int, error) {
	partitions := opt.Partitions
	if partitions <= 0 {
		partitions = 1
	}

	// 1. 统计记录总数，用于分配容量
	total := 0
	for _, tx := range txs {
		total += len(tx.Rows)
	}
	if total == 0 {
		return nil, 0, nil
	}

	// 2. 编码并分配至对应分区
	buckets := make([][]*structpb.Value, partitions)
	capacity := utils.CalcCapPerPartition(total, partitions, 10)
	for i := range buckets {
		buckets[i] = make([]*structpb.Value, 0, capacity)
	}
	for _, tx := range txs {
		for _, row := range tx.Rows {
			s, err := RowStruct(tx.Exec, row)
			if err != nil {
				return nil, 0, fmt.Errorf("encode row %s/%s tx=%s: %w", row.Program, row.Variant, tx.Exec.SignatureString(), err)
			}
			pid := utils.PartitionHashBytes(partitionKey(row), uint32(partitions))
			buckets[pid] = append(buckets[pid], structpb.NewStructValue(s))
		}
	}

	// 3. 每个分区封装为一个 KafkaJob
	batchID := uuid.NewString()
	slot := []byte(strconv.FormatUint(txCtx.Slot, 10))
	jobs := make([]*mq.KafkaJob, 0, partitions)
	for pid, list := range buckets {
		if len(list) == 0 {
			continue
		}
		value, err := utils.EncodeMessage(MsgTypeRows, &structpb.ListValue{Values: list})
		if err != nil {
			return nil, 0, fmt.Errorf("encode partition %d: %w", pid, err)
		}

		headers := []kafka.Header{
			{Key: HeaderBatchID, Value: []byte(batchID)},
			{Key: HeaderSlot, Value: slot},
		}
		if opt.Compress {
			value = compress(value)
			headers = append(headers, kafka.Header{Key: HeaderEncoding, Value: []byte(EncodingZstd)})
		}

		jobs = append(jobs, &mq.KafkaJob{
			Topic:     opt.Topic,
			Partition: int32(pid),
			Value:     value,
			Headers:   headers,
		})
	}
	return jobs, total, nil
}
