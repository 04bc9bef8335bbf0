package mq

import (
	"context"
	"fmt"
	"time"

	"dex-decoder-sol/internal/pkg/utils"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	defaultBatchSize = 32 * 1024
	defaultLingerMs  = 5

	adminTimeout = 10 * time.Second
)

// TopicOption 需要确保存在的 topic 及其分区数
type TopicOption struct {
	Topic      string
	Partitions int
}

// KafkaProducerOption 生产者参数
type KafkaProducerOption struct {
	Brokers     string // 多个用英文逗号分隔
	BatchSize   int    // 字节
	LingerMs    int
	Compression string // librdkafka compression.type，为空时不压缩（消息体可能已由 dispatcher 压缩）
	Topics      []TopicOption
}

// NewKafkaProducer 创建 Kafka 生产者，缺失的 topic 会先行创建
func NewKafkaProducer(opt KafkaProducerOption) (*kafka.Producer, error) {
	if err := ensureTopics(opt); err != nil {
		return nil, err
	}

	producer, err := kafka.NewProducer(producerConfig(opt))
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	return producer, nil
}

func ensureTopics(opt KafkaProducerOption) error {
	if len(opt.Topics) == 0 {
		return nil
	}

	adminClient, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": opt.Brokers,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	meta, err := adminClient.GetMetadata(nil, true, int(adminTimeout/time.Millisecond))
	if err != nil {
		return fmt.Errorf("failed to get metadata: %w", err)
	}
	rf := replicationFactor(len(meta.Brokers))
	logx.Infof("Kafka broker count = %d, using replication factor = %d", len(meta.Brokers), rf)

	existing := make(map[string]bool, len(meta.Topics))
	for _, topic := range meta.Topics {
		existing[topic.Topic] = true
	}
	toCreate := missingTopics(existing, opt.Topics, rf)
	if len(toCreate) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), adminTimeout)
	defer cancel()
	results, err := adminClient.CreateTopics(ctx, toCreate)
	if err != nil {
		return fmt.Errorf("failed to create topics: %w", err)
	}
	for _, result := range results {
		if result.Error.Code() != kafka.ErrNoError && result.Error.Code() != kafka.ErrTopicAlreadyExists {
			return fmt.Errorf("failed to create topic %s: %w", result.Topic, result.Error)
		}
	}
	return nil
}

// replicationFactor 单 broker 时只能为 1
func replicationFactor(brokerCount int) int {
	if brokerCount > 1 {
		return 2
	}
	return 1
}

func missingTopics(existing map[string]bool, topics []TopicOption, rf int) []kafka.TopicSpecification {
	var specs []kafka.TopicSpecification
	for _, t := range topics {
		if t.Topic == "" || existing[t.Topic] {
			continue
		}
		partitions := t.Partitions
		if partitions <= 0 {
			partitions = 1
		}
		existing[t.Topic] = true
		specs = append(specs, kafka.TopicSpecification{
			Topic:             t.Topic,
			NumPartitions:     partitions,
			ReplicationFactor: rf,
		})
	}
	return specs
}

func producerConfig(opt KafkaProducerOption) *kafka.ConfigMap {
	batchSize := opt.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	lingerMs := opt.LingerMs
	if lingerMs < 0 {
		lingerMs = defaultLingerMs
	}
	compression := opt.Compression
	if compression == "" {
		compression = "none"
	}

	return &kafka.ConfigMap{
		// 基础连接
		"bootstrap.servers": opt.Brokers,
		"client.id":         fmt.Sprintf("solana-decoder-%s", utils.GetLocalIP()),

		// 可靠性保障
		"acks":                                  "all",
		"enable.idempotence":                    true,
		"max.in.flight.requests.per.connection": 5, // 幂等场景下最大值为 5

		// 超时与重试
		"delivery.timeout.ms": 30000,
		"request.timeout.ms":  30000,
		"retries":             5,
		"retry.backoff.ms":    100,

		// 性能优化
		"batch.size":       batchSize,
		"linger.ms":        lingerMs,
		"compression.type": compression,

		"message.max.bytes": 2 * 1024 * 1024, // 2MB
	}
}
