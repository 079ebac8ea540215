package image

import "sync"

// Pool is a thread-safe pool of square working canvases.
//
// Atlas builds allocate one power-of-two canvas each and throw it away after
// cropping. Pool keeps those canvases keyed by size and format so that
// repeated builds at the same size reuse the allocation. Buffers larger
// than the pool's byte limit are never retained.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*ImageBuf
	maxSize  int // max buffers per bucket
	maxBytes int // largest retained buffer, 0 = unlimited
}

type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a pool retaining at most maxPerBucket buffers per
// size/format, each at most maxBytes large. Zero means unlimited for either.
func NewPool(maxPerBucket, maxBytes int) *Pool {
	return &Pool{
		buckets:  make(map[poolKey][]*ImageBuf),
		maxSize:  maxPerBucket,
		maxBytes: maxBytes,
	}
}

// Get returns a zeroed buffer of the given dimensions and format.
func (p *Pool) Get(width, height int, format Format) (*ImageBuf, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		// Put clears before storing, so the buffer is already zeroed.
		return buf, nil
	}
	p.mu.Unlock()

	return NewImageBuf(width, height, format)
}

// Put returns a buffer to the pool. The buffer is cleared first.
// Nil buffers, oversized buffers and buffers beyond the bucket limit are
// dropped.
func (p *Pool) Put(buf *ImageBuf) {
	if buf == nil || (p.maxBytes > 0 && buf.ByteSize() > p.maxBytes) {
		return
	}
	buf.Clear()

	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of buffers currently held.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}

// MaxPooledWidth is the widest square RGB8 canvas the default pool retains.
const MaxPooledWidth = 2048

// defaultPool is the package-level pool shared by atlas builds.
var defaultPool = NewPool(2, FormatRGB8.ImageBytes(MaxPooledWidth, MaxPooledWidth))

// Default returns the package-level pool.
func Default() *Pool {
	return defaultPool
}
