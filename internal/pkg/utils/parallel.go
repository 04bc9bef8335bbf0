package utils

import "sync"

// ParallelMap 使用最多 workers 个 goroutine 并发执行 fn，返回结果与输入一一对应（保持顺序）。
// fn 之间不共享可变状态，调用方负责保证。
func ParallelMap[T any, R any](items []T, workers int, fn func(T) R) []R {
	n := len(items)
	results := make([]R, n)
	if n == 0 {
		return results
	}

	// 单个任务或并发度不足时直接串行执行
	if n == 1 || workers <= 1 {
		for i, item := range items {
			results[i] = fn(item)
		}
		return results
	}
	if workers > n {
		workers = n
	}

	indexes := make(chan int, n)
	for i := 0; i < n; i++ {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = fn(items[i])
			}
		}()
	}
	wg.Wait()
	return results
}
