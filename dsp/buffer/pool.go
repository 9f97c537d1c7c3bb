package buffer

import "sync"

// Pool hands out []float64 buffers of one fixed length. It is safe for
// concurrent use.
type Pool struct {
	length int
	pool   sync.Pool
}

// NewPool returns a Pool of buffers holding length samples. Negative lengths
// are treated as zero.
func NewPool(length int) *Pool {
	length = max(0, length)

	p := &Pool{length: length}
	p.pool.New = func() any {
		buf := make([]float64, length)
		return &buf
	}

	return p
}

// Len returns the length of the buffers handed out by p.
func (p *Pool) Len() int { return p.length }

// Get returns a buffer of Len samples. Its contents are whatever the last
// user left in it; callers that read before writing must clear it first.
func (p *Pool) Get() []float64 {
	return *p.pool.Get().(*[]float64)
}

// Put returns buf for reuse. Buffers of another length, including nil, are
// dropped. The caller must not touch buf afterwards.
func (p *Pool) Put(buf []float64) {
	if len(buf) != p.length || cap(buf) < p.length {
		return
	}

	buf = buf[:p.length]
	p.pool.Put(&buf)
}
