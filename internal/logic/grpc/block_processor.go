package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/logic/dispatcher"
	"dex-decoder-sol/internal/logic/eventparser"
	"dex-decoder-sol/internal/logic/progress"
	"dex-decoder-sol/internal/logic/txadapter"
	"dex-decoder-sol/internal/mq"
	"dex-decoder-sol/internal/pkg/utils"
	"dex-decoder-sol/internal/svc"
	"dex-decoder-sol/internal/types"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/zeromicro/go-zero/core/logx"
)

type BlockProcessor struct {
	sc          *svc.GrpcServiceContext
	blockChan   chan *pb.SubscribeUpdateBlock // 接收 block 的 channel
	slotChecker *SlotChecker                  // 未配置 RPC 时为 nil
	ctx         context.Context
	cancel      func(err error)
	logx.Logger
}

// BlockResult 是一个 block 的解码结果
type BlockResult struct {
	TxCtx    *core.TxContext
	Txs      []dispatcher.TxRows // 只包含有记录的交易，按 TxIndex 升序
	TotalTxs int
	ValidTxs int
	Dropped  int // 结构缺失被丢弃的交易
	Rows     int
}

func NewBlockProcessor(sc *svc.GrpcServiceContext, blockChan chan *pb.SubscribeUpdateBlock, slotChecker *SlotChecker) *BlockProcessor {
	ctx, cancel := context.WithCancelCause(context.Background())
	return &BlockProcessor{
		sc:          sc,
		blockChan:   blockChan,
		slotChecker: slotChecker,
		Logger:      logx.WithContext(ctx).WithFields(logx.Field("service", "block_processor")),
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (p *BlockProcessor) Start() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case block := <-p.blockChan:
			p.procBlock(block)
			if len(p.blockChan) > 10 {
				p.Debugf("block chan len:%v", len(p.blockChan))
			}
		}
	}
}

func (p *BlockProcessor) Stop() {
	p.cancel(errors.New("service stop"))
}

func (p *BlockProcessor) procBlock(block *pb.SubscribeUpdateBlock) {
	startTime := time.Now()
	if p.slotChecker != nil {
		p.slotChecker.Observe(block.Slot)
		p.reportMissing()
	}

	// 1. 旧 block 判重
	txCtx := BuildTxContext(block)
	ok, err := p.sc.ProgressManager.ShouldProcessSlot(p.ctx, block.Slot, txCtx.BlockTime)
	if err != nil {
		p.Errorf("slot %d 判重失败，继续处理: %v", block.Slot, err)
	} else if !ok {
		p.Infof("slot %d 已处理，跳过", block.Slot)
		return
	}

	// 2. 并发解码
	res := DecodeBlock(txCtx, block.Transactions)
	p.Infof("slot %d 解码耗时: %v, 总tx: %d, 有效tx: %d, 丢弃: %d, 记录: %d",
		block.Slot, time.Since(startTime), res.TotalTxs, res.ValidTxs, res.Dropped, res.Rows)

	// 3. 发送并记录进度；发送失败时不标记，pending 过期后可重放
	if err := p.dispatch(res); err != nil {
		p.Errorf("slot %d 发送失败: %v", block.Slot, err)
		return
	}
	if err := p.sc.ProgressManager.MarkSlotStatus(p.ctx, block.Slot, progress.SlotProcessed); err != nil {
		p.Errorf("slot %d 标记进度失败: %v", block.Slot, err)
	}
	p.Infof("区块处理总耗时: %v, slot: %d", time.Since(startTime), block.Slot)
}

// reportMissing 取出漏块检查确认漏收的 slot 并记录，需离线回放
func (p *BlockProcessor) reportMissing() []uint64 {
	missing := p.slotChecker.Missing()
	if len(missing) > 0 {
		p.Errorf("漏收 slot %d 个，需要回放: %v", len(missing), missing)
	}
	return missing
}

func (p *BlockProcessor) dispatch(res *BlockResult) error {
	if res.Rows == 0 || p.sc.Producer == nil {
		return nil
	}

	kc := p.sc.Config.KafkaProducerConf
	jobs, _, err := dispatcher.BuildRowKafkaJobs(res.TxCtx, dispatcher.JobOption{
		Topic:      kc.Topic,
		Partitions: kc.Partitions,
		Compress:   kc.ZstdPayload,
	}, res.Txs)
	if err != nil {
		return err
	}

	tc := p.sc.Config.TimeConf
	ctx, cancel := context.WithTimeout(p.ctx, time.Duration(tc.SlotDispatchTimeoutMs)*time.Millisecond)
	defer cancel()
	_, failed := mq.SendKafkaJobs(ctx, p.sc.Producer, jobs, time.Duration(tc.EventSendTimeoutMs)*time.Millisecond)
	if len(failed) > 0 {
		return fmt.Errorf("%d/%d kafka jobs failed, first: %w", len(failed), len(jobs), failed[0].Err)
	}
	return nil
}

// DecodeBlock 过滤投票交易后并发解码 block 内的交易，结果保持交易顺序
func DecodeBlock(txCtx *core.TxContext, txs []*pb.SubscribeUpdateTransactionInfo) *BlockResult {
	res := &BlockResult{TxCtx: txCtx, TotalTxs: len(txs)}

	// 1. 过滤合法交易
	validTxs := make([]*pb.SubscribeUpdateTransactionInfo, 0, len(txs))
	for _, tx := range txs {
		if txadapter.IsValidGrpcTx(tx) {
			validTxs = append(validTxs, tx)
		}
	}
	res.ValidTxs = len(validTxs)

	// 2. 并发解码
	decoded := utils.ParallelMap(validTxs, consts.CpuCount+2, func(tx *pb.SubscribeUpdateTransactionInfo) *dispatcher.TxRows {
		return decodeTx(txCtx, tx)
	})

	// 3. 汇总
	for _, tx := range decoded {
		if tx == nil {
			res.Dropped++
			continue
		}
		if len(tx.Rows) == 0 {
			continue
		}
		res.Rows += len(tx.Rows)
		res.Txs = append(res.Txs, *tx)
	}
	return res
}

func decodeTx(txCtx *core.TxContext, tx *pb.SubscribeUpdateTransactionInfo) *dispatcher.TxRows {
	exec, err := txadapter.AdaptGrpcTx(txCtx, tx)
	if err != nil {
		logx.Errorf("[BlockProcessor] drop tx: slot=%d, index=%d, err=%v", txCtx.Slot, tx.Index, err)
		return nil
	}
	return &dispatcher.TxRows{
		Exec: exec,
		Rows: eventparser.DecodeExecution(exec).Rows(),
	}
}

// BuildTxContext 提取 block 元数据，blockHash 解析失败时使用零值
func BuildTxContext(block *pb.SubscribeUpdateBlock) *core.TxContext {
	blockHash, err := types.HashFromBase58(block.Blockhash)
	if err != nil {
		logx.Errorf("[BlockProcessor] BlockHash 无法解析，将使用零值：slot=%d, blockhash=%s, err=%v",
			block.Slot, block.Blockhash, err)
	}

	txCtx := &core.TxContext{
		Slot:       block.Slot,
		ParentSlot: block.ParentSlot,
		BlockHash:  blockHash,
	}
	if block.BlockTime != nil {
		txCtx.BlockTime = block.BlockTime.Timestamp
	}
	if block.BlockHeight != nil {
		txCtx.BlockHeight = block.BlockHeight.BlockHeight
	}
	return txCtx
}
