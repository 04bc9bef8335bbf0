package svc

import (
	"dex-decoder-sol/internal/config"
	"dex-decoder-sol/internal/logic/progress"
	"dex-decoder-sol/internal/mq"
	"dex-decoder-sol/internal/pkg/logger"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/redis/go-redis/v9"
)

// GrpcServiceContext 包含 gRPC 解码服务的共享资源
type GrpcServiceContext struct {
	Config          config.GrpcConfig
	Producer        *kafka.Producer           // 未配置 Kafka 时为 nil
	Redis           *redis.Client             // 未配置判重时为 nil
	ProgressManager *progress.ProgressManager // 未配置判重时为 nil，所有 slot 都处理
}

// NewGrpcServiceContext 创建一个新的 gRPC 服务上下文
func NewGrpcServiceContext(c config.GrpcConfig) (*GrpcServiceContext, error) {
	ctx := &GrpcServiceContext{Config: c}

	// 1. 初始化 Kafka 生产者
	if c.KafkaProducerConf.Brokers != "" {
		producer, err := mq.NewKafkaProducer(c.KafkaProducerConf.ToKafkaOption())
		if err != nil {
			logger.Errorf("[svc] Kafka producer 初始化失败: %v", err)
			return nil, err
		}
		ctx.Producer = producer
	} else {
		logger.Warnf("[svc] 未配置 Kafka brokers，解码结果不会发送")
	}

	// 2. 初始化 Redis 判重
	if pc := c.ProgressConf; pc.RedisAddr != "" {
		ctx.Redis = redis.NewClient(&redis.Options{
			Addr:     pc.RedisAddr,
			Password: pc.RedisPassword,
			DB:       pc.RedisDB,
		})
		store := progress.NewRedisProgressStore(ctx.Redis, pc.KeyPrefix)
		ctx.ProgressManager = progress.NewProgressManager(store, pc.RecentThresholdSec)
	}

	logger.Infof("[svc] gRPC 服务上下文初始化完成")
	return ctx, nil
}

// Close 关闭服务上下文中的资源
func (ctx *GrpcServiceContext) Close() {
	if ctx.Producer != nil {
		ctx.Producer.Flush(3000)
		ctx.Producer.Close()
	}
	if ctx.Redis != nil {
		_ = ctx.Redis.Close()
	}
}
