package config

import (
	"dex-decoder-sol/internal/mq"
	"dex-decoder-sol/internal/pkg/logger"
)

type LogConfig struct {
	Format   string `json:"format,default=console"` // 日志格式，支持 "console" 或 "json"
	LogDir   string `json:"log_dir,optional"`       // 日志目录，为空时只输出到 stderr
	Level    string `json:"level,default=info"`     // 日志级别：debug / info / warn / error
	Compress bool   `json:"compress,optional"`      // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// KafkaProducerConfig 表示 Kafka 生产者相关配置，Brokers 为空时只解码不发送
type KafkaProducerConfig struct {
	Brokers     string `json:"brokers,optional"`          // Kafka broker 地址，多个用英文逗号分隔
	BatchSize   int    `json:"batch_size,default=32768"`  // 批处理大小（单位字节）
	LingerMs    int    `json:"linger_ms,default=5"`       // 批处理最大延迟（毫秒）
	Compression string `json:"compression,optional"`      // librdkafka 压缩算法
	Topic       string `json:"topic,default=sol_decoded"` // 解码记录 topic
	Partitions  int    `json:"partitions,default=8"`      // topic 分区数
	ZstdPayload bool   `json:"zstd_payload,optional"`     // 消息体是否 zstd 压缩
}

func (c *KafkaProducerConfig) ToKafkaOption() mq.KafkaProducerOption {
	return mq.KafkaProducerOption{
		Brokers:     c.Brokers,
		BatchSize:   c.BatchSize,
		LingerMs:    c.LingerMs,
		Compression: c.Compression,
		Topics:      []mq.TopicOption{{Topic: c.Topic, Partitions: c.Partitions}},
	}
}

// TimeConfig 表示各种超时配置（单位：毫秒）
type TimeConfig struct {
	SlotDispatchTimeoutMs int `json:"slot_dispatch_timeout_ms,default=3000"` // 每个 slot 的发送最大耗时（Kafka + Redis）
	EventSendTimeoutMs    int `json:"event_send_timeout_ms,default=2000"`    // 单条消息发送到 Kafka 并等待 ack 的超时时间
}

// DecoderConfig 选择启用的程序，名称见 consts.Program*，为空时全部启用
type DecoderConfig struct {
	Programs []string `json:"programs,optional"`
}

// ProgressConfig 表示 slot 判重配置，RedisAddr 为空时不判重
type ProgressConfig struct {
	RedisAddr          string `json:"redis_addr,optional"`
	RedisPassword      string `json:"redis_password,optional"`
	RedisDB            int    `json:"redis_db,optional"`
	KeyPrefix          string `json:"key_prefix,optional"`
	RecentThresholdSec int    `json:"recent_threshold_sec,default=60"` // 判定为"近期 block"的时间阈值（秒）
}

// GrpcConfig 是主配置结构体，用于驱动解码服务
type GrpcConfig struct {
	LogConf           LogConfig           `json:"logger"`
	KafkaProducerConf KafkaProducerConfig `json:"kafka_producer"`
	TimeConf          TimeConfig          `json:"time_conf"`
	DecoderConf       DecoderConfig       `json:"decoder,optional"`
	ProgressConf      ProgressConfig      `json:"progress,optional"`

	// gRPC 客户端连接相关配置
	Grpc struct {
		Endpoint    string `json:"endpoint"`              // gRPC 服务端地址
		XToken      string `json:"x_token,optional"`      // x-token 认证
		RpcEndpoint string `json:"rpc_endpoint,optional"` // Solana RPC 地址，用于漏块检查，为空时不检查

		// 应用级逻辑心跳（ping）配置
		StreamPingIntervalSec int `json:"stream_ping_interval_sec,default=10"`

		// gRPC Keepalive 底层连接检测配置
		KeepalivePingIntervalSec int `json:"keepalive_ping_interval_sec,default=30"`
		KeepalivePingTimeoutSec  int `json:"keepalive_ping_timeout_sec,default=10"`

		// gRPC 窗口大小调优（用于大数据流推送）
		InitialWindowSize     int `json:"initial_window_size,default=1073741824"`
		InitialConnWindowSize int `json:"initial_conn_window_size,default=1073741824"`

		// 消息体大小限制
		MaxCallSendMsgSize int `json:"max_call_send_msg_size,default=67108864"`
		MaxCallRecvMsgSize int `json:"max_call_recv_msg_size,default=67108864"`

		// 超时与重连策略
		ReconnectIntervalSec int `json:"reconnect_interval_sec,default=3"`
		ConnectTimeoutSec    int `json:"connect_timeout_sec,default=10"`
		SendTimeoutSec       int `json:"send_timeout_sec,default=5"`
		BlockRecvTimeoutSec  int `json:"block_recv_timeout_sec,default=30"` // 超过该时间未收到 block 触发重连
		BlockChanSize        int `json:"block_chan_size,default=200"`
	} `json:"grpc"`
}
