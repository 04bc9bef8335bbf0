package progress

import (
	"context"
	"time"
)

type slotStore interface {
	GetSlotStatus(ctx context.Context, slot uint64) (SlotStatus, error)
	MarkSlotStatus(ctx context.Context, slot uint64, status SlotStatus) error
	TryMarkPending(ctx context.Context, slot uint64) (bool, error)
}

// ProgressManager 控制 slot 判重：实时流中的新 block 直接处理，
// 旧 block（补块、重放）先查 Redis，避免重复发送。
// nil 的 *ProgressManager 表示未启用判重，所有 slot 都处理。
type ProgressManager struct {
	store           slotStore
	recentThreshold time.Duration
}

func NewProgressManager(store *RedisProgressStore, recentThresholdSec int) *ProgressManager {
	return &ProgressManager{
		store:           store,
		recentThreshold: time.Duration(recentThresholdSec) * time.Second,
	}
}

// ShouldProcessSlot 判断是否需要处理该 slot：
//   - 近期 block 直接处理；
//   - 旧 block 已有最终结果时跳过；
//   - 否则尝试占用，占用成功才处理。
func (pm *ProgressManager) ShouldProcessSlot(ctx context.Context, slot uint64, blockTime int64) (bool, error) {
	if pm == nil {
		return true, nil
	}
	if time.Since(time.Unix(blockTime, 0)) <= pm.recentThreshold {
		return true, nil
	}

	status, err := pm.store.GetSlotStatus(ctx, slot)
	if err != nil {
		return false, err
	}
	if status.Done() {
		return false, nil
	}
	return pm.store.TryMarkPending(ctx, slot)
}

// MarkSlotStatus 记录 slot 的最终状态，只接受 Processed / Invalid
func (pm *ProgressManager) MarkSlotStatus(ctx context.Context, slot uint64, status SlotStatus) error {
	if pm == nil || !status.Done() {
		return nil
	}
	return pm.store.MarkSlotStatus(ctx, slot, status)
}
