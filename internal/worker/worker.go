package worker

import (
	"log"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// queueSize 讓 handler 提交工作時不必等待 worker 空閒
const queueSize = 64

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, queueSize)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				run(job)
			}
		}()
	}
	return p
}

// run 執行單一工作，panic 只記錄不讓 worker 結束
func run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("worker: task panicked: %v", r)
		}
	}()
	job()
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop drains queued tasks and waits for the workers to exit.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Inline runs every task synchronously on Submit. Tests use it to observe
// side effects without waiting.
type Inline struct{}

func (Inline) Submit(t Task) { run(t) }
func (Inline) Stop()         {}
