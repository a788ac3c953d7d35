package worker

import (
	"sync"
	"sync/atomic"
)

// Job 是匯入批次中的一個工作單元，回傳錯誤表示該筆失敗。
type Job func() error

// Pool 以固定數量的 worker 執行 Job，並統計成功與失敗筆數。
type Pool interface {
	Submit(Job)
	Stop() (done, failed int)
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Job)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job == nil {
					continue
				}
				if err := job(); err != nil {
					p.failed.Add(1)
				} else {
					p.done.Add(1)
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs   chan Job
	wg     sync.WaitGroup
	done   atomic.Int64
	failed atomic.Int64
}

func (p *pool) Submit(j Job) {
	p.jobs <- j
}

// Stop 等待所有已送出的 Job 完成後回傳統計
func (p *pool) Stop() (int, int) {
	close(p.jobs)
	p.wg.Wait()
	return int(p.done.Load()), int(p.failed.Load())
}
