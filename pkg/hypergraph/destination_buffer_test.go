package hypergraph

import (
	"sync"
	"testing"
)

func TestDestinationBuffer_AppendAndDrain(t *testing.T) {
	b := NewDestinationBuffer(4)

	full, err := b.Append(1, 100, KindVertex)
	if err != nil || full {
		t.Fatalf("Append #1 = (%v, %v), want (false, nil)", full, err)
	}
	full, err = b.Append(2, 200, KindEdge)
	if err != nil || full {
		t.Fatalf("Append #2 = (%v, %v), want (false, nil)", full, err)
	}

	var vertexCalls, edgeCalls [][2]uint64
	b.Drain(
		func(src, dest uint64) { vertexCalls = append(vertexCalls, [2]uint64{src, dest}) },
		func(src, dest uint64) { edgeCalls = append(edgeCalls, [2]uint64{src, dest}) },
	)

	if len(vertexCalls) != 1 || vertexCalls[0] != [2]uint64{1, 100} {
		t.Errorf("vertexCalls = %v, want [[1 100]]", vertexCalls)
	}
	if len(edgeCalls) != 1 || edgeCalls[0] != [2]uint64{2, 200} {
		t.Errorf("edgeCalls = %v, want [[2 200]]", edgeCalls)
	}
}

func TestDestinationBuffer_FullOnLastSlot(t *testing.T) {
	b := NewDestinationBuffer(2)

	full, err := b.Append(1, 1, KindVertex)
	if err != nil || full {
		t.Fatalf("first append should not report full, got (%v,%v)", full, err)
	}
	full, err = b.Append(2, 2, KindVertex)
	if err != nil || !full {
		t.Fatalf("second append should report full, got (%v,%v)", full, err)
	}
}

func TestDestinationBuffer_ClosedPastCapacity(t *testing.T) {
	b := NewDestinationBuffer(1)
	if _, err := b.Append(1, 1, KindVertex); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if _, err := b.Append(2, 2, KindVertex); err != ErrBufferClosed {
		t.Fatalf("second append error = %v, want ErrBufferClosed", err)
	}
}

func TestDestinationBuffer_ClearResets(t *testing.T) {
	b := NewDestinationBuffer(2)
	_, _ = b.Append(1, 1, KindVertex)
	_, _ = b.Append(2, 2, KindVertex)
	b.Clear()

	if b.Size() != 0 || b.Filled() != 0 {
		t.Fatalf("after Clear: size=%d filled=%d, want 0,0", b.Size(), b.Filled())
	}

	full, err := b.Append(3, 3, KindEdge)
	if err != nil || full {
		t.Fatalf("append after Clear should succeed and not report full, got (%v,%v)", full, err)
	}
}

func TestDestinationBuffer_InvariantUnderConcurrentAppend(t *testing.T) {
	b := NewDestinationBuffer(1000)
	var wg sync.WaitGroup
	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = b.Append(uint64(i), uint64(i), KindVertex)
		}(i)
	}
	wg.Wait()

	if b.Filled() > b.Size() || b.Size() > b.Capacity() {
		t.Fatalf("invariant violated: filled=%d size=%d capacity=%d", b.Filled(), b.Size(), b.Capacity())
	}
	if b.Filled() != 1000 {
		t.Fatalf("Filled() = %d, want 1000", b.Filled())
	}
}
