package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"dex-decoder-sol/internal/svc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRanges(t *testing.T) {
	now := time.Now()
	merged := mergeRanges([]SlotRange{
		{From: 50, To: 60, SubmitAt: now},
		{From: 1, To: 100, SubmitAt: now},
		{From: 5, To: 10, SubmitAt: now}, // 被包含
	})
	require.Len(t, merged, 1)
	assert.Equal(t, uint64(1), merged[0].From)
	assert.Equal(t, uint64(100), merged[0].To)

	// 超过单次查询上限时拆段
	merged = mergeRanges([]SlotRange{{From: 1, To: 25000}})
	require.Len(t, merged, 3)
	assert.Equal(t, uint64(10000), merged[0].To)
	assert.Equal(t, uint64(10001), merged[1].From)
	assert.Equal(t, uint64(25000), merged[2].To)

	assert.Nil(t, mergeRanges(nil))
}

func TestFillEmptySlots(t *testing.T) {
	empty := make(map[uint64]struct{})
	fillEmptySlots(10, 20, []uint64{12, 11, 15, 20}, empty)

	var got []uint64
	for slot := uint64(10); slot <= 20; slot++ {
		if _, ok := empty[slot]; ok {
			got = append(got, slot)
		}
	}
	assert.Equal(t, []uint64{10, 13, 14, 16, 17, 18, 19}, got)

	empty = make(map[uint64]struct{})
	fillEmptySlots(1, 3, nil, empty)
	assert.Len(t, empty, 3)
}

func TestSlotInFailedRanges(t *testing.T) {
	failed := []SlotRange{{From: 10, To: 20}, {From: 40, To: 40}}
	assert.True(t, slotInFailedRanges(10, failed))
	assert.True(t, slotInFailedRanges(40, failed))
	assert.False(t, slotInFailedRanges(21, failed))
	assert.False(t, slotInFailedRanges(5, failed))
}

func TestSlotChecker_ObserveAndCheck(t *testing.T) {
	var calls [][2]uint64
	s := newSlotChecker(func(_ context.Context, from, to uint64) ([]uint64, error) {
		calls = append(calls, [2]uint64{from, to})
		return []uint64{103}, nil // 只有 103 实际出块
	})
	defer s.Stop()

	s.Observe(100)
	s.Observe(101)
	s.Observe(105) // 空档 [102, 104]
	s.Observe(103) // 乱序忽略

	require.Len(t, s.rangeCh, 1)
	r := <-s.rangeCh
	assert.Equal(t, uint64(102), r.From)
	assert.Equal(t, uint64(104), r.To)

	s.checkSlotRanges([]SlotRange{r})
	assert.Equal(t, [][2]uint64{{102, 104}}, calls)
	// 103 出块但未收到，由 BlockProcessor 取出
	p := NewBlockProcessor(&svc.GrpcServiceContext{}, nil, s)
	defer p.Stop()
	assert.Equal(t, []uint64{103}, p.reportMissing())
	assert.Empty(t, p.reportMissing())
}

func TestSlotChecker_RetryFailure(t *testing.T) {
	attempts := 0
	s := newSlotChecker(func(context.Context, uint64, uint64) ([]uint64, error) {
		attempts++
		return nil, errors.New("rpc down")
	})
	defer s.Stop()

	_, err := s.getBlocksWithRetry(1, 2, 3, time.Millisecond)
	assert.Error(t, err)
	assert.Equal(t, 3, attempts)

	// 查询失败的范围不判定为漏收
	s.checkSlotRanges([]SlotRange{{From: 1, To: 2}})
	assert.Empty(t, s.Missing())
}

func TestSlotChecker_Submit(t *testing.T) {
	s := newSlotChecker(nil)
	defer s.Stop()
	s.Submit(5, 4)
	assert.Empty(t, s.rangeCh)
	s.Submit(4, 5)
	assert.Len(t, s.rangeCh, 1)
}
