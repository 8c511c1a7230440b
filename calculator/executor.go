package calculator

import (
	"context"
	"runtime"
	"sync"
)

// 并发执行相互独立的计算任务，结果按任务下标写回

type task struct {
	index int
	value float64
}

type executor struct {
	workers      int
	dispatchChan chan task
}

func newExecutor(workers int) *executor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &executor{
		workers:      workers,
		dispatchChan: make(chan task, workers),
	}
}

// 分发 values 中的每个值，由 workers 个 goroutine 调用 f 处理。
// ctx 取消后停止分发，已分发的任务仍会完成。
func (e *executor) run(ctx context.Context, values []float64, f func(t task)) error {
	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range e.dispatchChan {
				f(t)
			}
		}()
	}

	var err error
LOOP:
	for i, v := range values {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break LOOP
		case e.dispatchChan <- task{index: i, value: v}:
		}
	}
	close(e.dispatchChan)
	wg.Wait()
	return err
}
