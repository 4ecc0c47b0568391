package termination

import (
	"sync"
	"testing"
	"time"
)

func TestHasTerminated_InitiallyTrue(t *testing.T) {
	d := New()
	if !d.HasTerminated() {
		t.Fatal("expected fresh Detector to be terminated")
	}
}

func TestHasTerminated_FalseWhilePending(t *testing.T) {
	d := New()
	d.Started(3)
	d.Finished(1)
	if d.HasTerminated() {
		t.Fatal("expected HasTerminated to be false with pending work")
	}
}

func TestHasTerminated_TrueAfterAllFinished(t *testing.T) {
	d := New()
	d.Started(3)
	d.Finished(1)
	d.Finished(1)
	d.Finished(1)
	if !d.HasTerminated() {
		t.Fatal("expected HasTerminated to be true once started == finished")
	}
}

func TestWait_ReturnsPromptlyWhenAlreadyTerminated(t *testing.T) {
	d := New()
	d.Started(3)
	d.Finished(1)
	d.Finished(1)
	d.Finished(1)

	done := make(chan struct{})
	go func() {
		d.Wait(time.Millisecond, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(20 * time.Millisecond):
		t.Fatal("Wait did not return within two backoff cycles")
	}
}

func TestWait_BlocksUntilFinished(t *testing.T) {
	d := New()
	d.Started(1)

	done := make(chan struct{})
	go func() {
		d.Wait(time.Millisecond, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before work finished")
	case <-time.After(10 * time.Millisecond):
	}

	d.Finished(1)

	select {
	case <-done:
	case <-time.After(50 * time.Millisecond):
		t.Fatal("Wait did not return after work finished")
	}
}

func TestDetector_ConcurrentStartFinish(t *testing.T) {
	d := New()
	var wg sync.WaitGroup
	const n = 500
	for i := 0; i < n; i++ {
		wg.Add(1)
		d.Started(1)
		go func() {
			defer wg.Done()
			d.Finished(1)
		}()
	}
	wg.Wait()
	if !d.HasTerminated() {
		t.Fatal("expected HasTerminated true after all goroutines finished")
	}
}
