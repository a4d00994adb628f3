package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProviderAdvances(t *testing.T) {
	clock := NewMonotonicTimeProvider()

	t1 := clock.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := clock.Now()

	if d := t2.Sub(t1); d < 5*time.Millisecond {
		t.Errorf("expected at least 5ms between readings, got %v", d)
	}
}

func TestMockTimeProvider(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)

	if !clock.Now().Equal(testEpoch) {
		t.Fatalf("initial time = %v, want %v", clock.Now(), testEpoch)
	}

	if got := clock.Advance(1250 * time.Millisecond); !got.Equal(testEpoch.Add(1250 * time.Millisecond)) {
		t.Errorf("Advance returned %v", got)
	}

	later := testEpoch.Add(time.Hour)
	clock.SetTime(later)
	if !clock.Now().Equal(later) {
		t.Errorf("after SetTime: %v, want %v", clock.Now(), later)
	}
}

func TestMockTimeProviderConcurrentAdvance(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				clock.Advance(time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = clock.Now()
			}
		}()
	}
	wg.Wait()

	if want := testEpoch.Add(400 * time.Millisecond); !clock.Now().Equal(want) {
		t.Errorf("after concurrent advances: %v, want %v", clock.Now(), want)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
