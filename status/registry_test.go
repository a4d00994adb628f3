package status

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestRegistryCachedPointers(t *testing.T) {
	r := NewRegistry()

	hits := r.Ints.Get("tap.hits")
	hits.Add(3)

	if r.Ints.Get("tap.hits") != hits {
		t.Fatal("Get should return the cached pointer")
	}
	if got := r.Int("tap.hits"); got != 3 {
		t.Errorf("Int(tap.hits) = %d, want 3", got)
	}
	if got := r.Int("missing"); got != 0 {
		t.Errorf("Int(missing) = %d, want 0", got)
	}
	if r.Ints.Has("missing") {
		t.Error("reading a missing metric must not register it")
	}
}

func TestRegistryConcurrentAdds(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get("loop.frames").Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Int("loop.frames"); got != 1000 {
		t.Errorf("loop.frames = %d, want 1000", got)
	}
}

func TestRegistrySnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b").Store(2)
	r.Ints.Get("a").Store(1)
	r.Strings.Get("phase").Store("Playing")

	snap := r.Snapshot()
	if len(snap) != 2 || snap["a"] != 1 || snap["b"] != 2 {
		t.Errorf("Snapshot = %v", snap)
	}

	var keys []string
	r.Ints.Range(func(key string, _ *atomic.Int64) { keys = append(keys, key) })
	if strings.Join(keys, ",") != "a,b" {
		t.Errorf("Range order = %v, want [a b]", keys)
	}

	if r.TotalCount() != 3 {
		t.Errorf("TotalCount = %d, want 3", r.TotalCount())
	}
	if r.String("phase") != "Playing" {
		t.Errorf("String(phase) = %q", r.String("phase"))
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should load as empty string")
	}
	s.Store(strings.Repeat("x", MaxStringLen+10))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("stored length = %d, want %d", len(s.Load()), MaxStringLen)
	}
}
