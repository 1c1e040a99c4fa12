package marshal

import (
	"math/bits"
	"sync"
)

// Size classes are powers of two from minClass to maxClass bytes.
// Larger requests are allocated directly and never retained.
const (
	minClassShift = 6  // 64 B
	maxClassShift = 20 // 1 MiB
	numClasses    = maxClassShift - minClassShift + 1
)

// Pool is a thread-safe pool of scratch byte buffers grouped by size class.
//
// Buffers are zeroed before reuse so native code never observes data left
// over from an earlier call.
type Pool struct {
	mu        sync.Mutex
	buckets   [numClasses][][]byte
	maxBucket int // max buffers per class, 0 = unlimited

	gets, puts, misses int
}

// DefaultPerClass is the number of buffers retained per size class by
// NewPool(0).
const DefaultPerClass = 16

// NewPool creates a pool that keeps at most perClass buffers per size class.
// perClass <= 0 selects DefaultPerClass.
func NewPool(perClass int) *Pool {
	if perClass <= 0 {
		perClass = DefaultPerClass
	}
	return &Pool{maxBucket: perClass}
}

var defaultPool = NewPool(0)

// DefaultPool returns the process-wide pool.
func DefaultPool() *Pool { return defaultPool }

// classOf returns the size class for n bytes, or -1 if n is not pooled.
func classOf(n int) int {
	if n > 1<<maxClassShift {
		return -1
	}
	if n <= 1<<minClassShift {
		return 0
	}
	return bits.Len(uint(n-1)) - minClassShift
}

// Get returns a zeroed buffer of length n.
func (p *Pool) Get(n int) []byte {
	if n <= 0 {
		return nil
	}
	c := classOf(n)
	if c < 0 {
		p.mu.Lock()
		p.gets++
		p.misses++
		p.mu.Unlock()
		return make([]byte, n)
	}

	p.mu.Lock()
	p.gets++
	bucket := p.buckets[c]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[c] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		buf = buf[:n]
		clear(buf)
		return buf
	}
	p.misses++
	p.mu.Unlock()

	return make([]byte, n, 1<<(c+minClassShift))
}

// Put returns buf to the pool. Buffers that did not come from Get, or whose
// class is full, are dropped.
func (p *Pool) Put(buf []byte) {
	if buf == nil {
		return
	}
	c := classOf(cap(buf))
	p.mu.Lock()
	defer p.mu.Unlock()
	p.puts++
	if c < 0 || cap(buf) != 1<<(c+minClassShift) {
		return
	}
	if len(p.buckets[c]) >= p.maxBucket {
		return
	}
	p.buckets[c] = append(p.buckets[c], buf[:0])
}

// PoolStats reports pool activity.
type PoolStats struct {
	Gets     int // buffers handed out
	Puts     int // buffers handed back
	Misses   int // Gets that had to allocate
	Retained int // buffers currently held
}

// Outstanding returns the number of buffers handed out and not yet returned.
func (s PoolStats) Outstanding() int { return s.Gets - s.Puts }

// Stats returns a snapshot of pool activity.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := PoolStats{Gets: p.gets, Puts: p.puts, Misses: p.misses}
	for _, b := range p.buckets {
		s.Retained += len(b)
	}
	return s
}

// Clear drops every retained buffer.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.buckets {
		p.buckets[i] = nil
	}
}
