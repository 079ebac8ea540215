package image

import (
	"sync"
	"testing"
)

func TestPool_GetCreatesBuffer(t *testing.T) {
	pool := NewPool(4, 0)

	buf, err := pool.Get(64, 64, FormatRGB8)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if buf.Width() != 64 || buf.Height() != 64 || buf.Format() != FormatRGB8 {
		t.Errorf("Get() = %dx%d %v, want 64x64 RGB8", buf.Width(), buf.Height(), buf.Format())
	}
}

func TestPool_GetInvalid(t *testing.T) {
	pool := NewPool(4, 0)
	if _, err := pool.Get(0, 64, FormatRGB8); err == nil {
		t.Error("Get(0, 64) should fail")
	}
}

func TestPool_ReuseIsCleared(t *testing.T) {
	pool := NewPool(4, 0)

	buf, _ := pool.Get(8, 8, FormatRGB8)
	_ = buf.SetRGB(3, 3, 255, 255, 255)
	pool.Put(buf)

	if pool.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", pool.Len())
	}

	again, _ := pool.Get(8, 8, FormatRGB8)
	if again != buf {
		t.Error("expected the pooled buffer to be reused")
	}
	if r, _, _ := again.GetRGB(3, 3); r != 0 {
		t.Errorf("reused buffer not cleared: r = %d", r)
	}
	if pool.Len() != 0 {
		t.Errorf("Len() = %d, want 0", pool.Len())
	}
}

func TestPool_BucketLimit(t *testing.T) {
	pool := NewPool(1, 0)

	a, _ := NewImageBuf(4, 4, FormatRGB8)
	b, _ := NewImageBuf(4, 4, FormatRGB8)
	pool.Put(a)
	pool.Put(b)
	pool.Put(nil)

	if pool.Len() != 1 {
		t.Errorf("Len() = %d, want 1", pool.Len())
	}
}

func TestPool_SizesAreSeparate(t *testing.T) {
	pool := NewPool(4, 0)

	small, _ := NewImageBuf(4, 4, FormatRGB8)
	pool.Put(small)

	big, _ := pool.Get(8, 8, FormatRGB8)
	if big == small {
		t.Error("buffer of a different size must not be reused")
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(8, 0)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				buf, err := pool.Get(16, 16, FormatRGB8)
				if err != nil {
					t.Error(err)
					return
				}
				_ = buf.SetRGB(0, 0, 1, 1, 1)
				pool.Put(buf)
			}
		}()
	}
	wg.Wait()

	if pool.Len() > 8 {
		t.Errorf("Len() = %d, want <= 8", pool.Len())
	}
}

func TestPool_ByteLimit(t *testing.T) {
	pool := NewPool(4, FormatRGB8.ImageBytes(8, 8))

	fits, _ := NewImageBuf(8, 8, FormatRGB8)
	tooBig, _ := NewImageBuf(16, 16, FormatRGB8)
	_ = tooBig.SetRGB(0, 0, 9, 9, 9)
	pool.Put(fits)
	pool.Put(tooBig)

	if pool.Len() != 1 {
		t.Errorf("Len() = %d, want 1", pool.Len())
	}
	if r, _, _ := tooBig.GetRGB(0, 0); r != 9 {
		t.Error("dropped buffer should be left untouched")
	}
}

func TestDefaultPool_DropsLargeCanvases(t *testing.T) {
	pool := Default()
	before := pool.Len()

	big, err := NewImageBuf(MaxPooledWidth*2, MaxPooledWidth*2, FormatRGB8)
	if err != nil {
		t.Fatal(err)
	}
	pool.Put(big)
	if pool.Len() != before {
		t.Errorf("Len() = %d, want %d", pool.Len(), before)
	}

	edge, _ := NewImageBuf(MaxPooledWidth, MaxPooledWidth, FormatRGB8)
	pool.Put(edge)
	if pool.Len() != before+1 {
		t.Errorf("Len() = %d, want %d", pool.Len(), before+1)
	}
	if got, _ := pool.Get(MaxPooledWidth, MaxPooledWidth, FormatRGB8); got != edge {
		t.Error("canvas at the width limit should be reused")
	}
}
