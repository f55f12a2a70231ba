//go:build ants

package parallel

import "github.com/panjf2000/ants/v2"

// antsPool backs the worker pool with panjf2000/ants when the module is
// built with -tags ants, trading goroutine-per-task for a reusable pool.
type antsPool struct {
	pool *ants.Pool
}

func newPool(size int) (pooler, error) {
	p, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	return &antsPool{pool: p}, nil
}

func (p *antsPool) Submit(task func()) error {
	return p.pool.Submit(task)
}

func (p *antsPool) Release() {
	p.pool.Release()
}
