package cow

import (
	"errors"
	"slices"
	"sync"
	"testing"
)

type payload struct {
	items  []int
	clones *int
}

func (p *payload) Clone() *payload {
	if p.clones != nil {
		*p.clones++
	}
	return &payload{items: slices.Clone(p.items), clones: p.clones}
}

func newPayload(items ...int) (*payload, *int) {
	n := 0
	return &payload{items: items, clones: &n}, &n
}

func TestNullValue(t *testing.T) {
	var v Value[*payload]

	if !v.Null() {
		t.Fatal("zero Value should be null")
	}
	if v.Unique() {
		t.Error("null Value should not be unique")
	}
	if got := v.RefCount(); got != 0 {
		t.Errorf("RefCount() = %d, want 0", got)
	}
	if _, err := v.Read(); !errors.Is(err, ErrNull) {
		t.Errorf("Read() error = %v, want ErrNull", err)
	}
	if _, err := v.Write(); !errors.Is(err, ErrNull) {
		t.Errorf("Write() error = %v, want ErrNull", err)
	}

	c := v.Copy()
	if !c.Null() {
		t.Error("copy of null Value should be null")
	}
	v.Release()
	c.Release()
}

func TestNewIsUnique(t *testing.T) {
	p, _ := newPayload(1, 2, 3)
	v := New(p)
	defer v.Release()

	if v.Null() {
		t.Fatal("New should allocate storage")
	}
	if !v.Unique() {
		t.Error("fresh Value should be unique")
	}
	if got := v.RefCount(); got != 1 {
		t.Errorf("RefCount() = %d, want 1", got)
	}
}

func TestCopySharesStorage(t *testing.T) {
	p, clones := newPayload(1, 2, 3)
	a := New(p)
	b := a.Copy()

	if a.RefCount() != 2 || b.RefCount() != 2 {
		t.Fatalf("RefCount() = %d/%d, want 2/2", a.RefCount(), b.RefCount())
	}
	ra, _ := a.Read()
	rb, _ := b.Read()
	if ra != rb {
		t.Error("copies should share the payload")
	}
	if *clones != 0 {
		t.Errorf("Copy cloned the payload %d times", *clones)
	}

	b.Release()
	if !b.Null() {
		t.Error("released handle should be null")
	}
	if got := a.RefCount(); got != 1 {
		t.Errorf("RefCount() after release = %d, want 1", got)
	}
	a.Release()
}

func TestWriteDetachesSharedPayload(t *testing.T) {
	p, clones := newPayload(1, 2, 3)
	a := New(p)
	b := a.Copy()

	w, err := b.Write()
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	w.items[0] = 100

	if *clones != 1 {
		t.Errorf("clones = %d, want 1", *clones)
	}
	ra, _ := a.Read()
	if ra.items[0] != 1 {
		t.Errorf("original payload modified: %v", ra.items)
	}
	if !a.Unique() || !b.Unique() {
		t.Errorf("both handles should be unique after detach, got refs %d/%d", a.RefCount(), b.RefCount())
	}

	// Writing a unique handle must not clone again.
	if _, err := b.Write(); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if *clones != 1 {
		t.Errorf("clones after second write = %d, want 1", *clones)
	}

	a.Release()
	b.Release()
}

func TestWriteUniqueInPlace(t *testing.T) {
	p, clones := newPayload(7)
	v := New(p)
	defer v.Release()

	w, _ := v.Write()
	if w != p {
		t.Error("unique Write should return the payload in place")
	}
	if *clones != 0 {
		t.Errorf("clones = %d, want 0", *clones)
	}
}

func TestMove(t *testing.T) {
	p, _ := newPayload(1)
	a := New(p)
	b := a.Move()

	if !a.Null() {
		t.Error("moved-from handle should be null")
	}
	if b.RefCount() != 1 {
		t.Errorf("RefCount() = %d, want 1", b.RefCount())
	}
	a.Release() // no-op on moved-from handle
	if b.RefCount() != 1 {
		t.Errorf("releasing moved-from handle changed RefCount to %d", b.RefCount())
	}
	b.Release()
}

func TestAssign(t *testing.T) {
	p1, _ := newPayload(1)
	p2, _ := newPayload(2)
	a := New(p1)
	b := New(p2)
	keep := b.Copy()

	a.Assign(&b)
	ra, _ := a.Read()
	if ra.items[0] != 2 {
		t.Errorf("Assign did not share payload: %v", ra.items)
	}
	if got := b.RefCount(); got != 3 {
		t.Errorf("RefCount() = %d, want 3", got)
	}

	a.Assign(&a)
	if got := a.RefCount(); got != 3 {
		t.Errorf("self-assign changed RefCount to %d", got)
	}

	a.Release()
	b.Release()
	if got := keep.RefCount(); got != 1 {
		t.Errorf("RefCount() = %d, want 1", got)
	}
	keep.Release()
}

func TestMoveFrom(t *testing.T) {
	p1, _ := newPayload(1)
	p2, _ := newPayload(2)
	a := New(p1)
	b := New(p2)

	a.MoveFrom(&b)
	if !b.Null() {
		t.Error("source of MoveFrom should be null")
	}
	ra, _ := a.Read()
	if ra.items[0] != 2 || a.RefCount() != 1 {
		t.Errorf("MoveFrom result = %v refs %d", ra.items, a.RefCount())
	}

	a.MoveFrom(&a)
	if a.Null() {
		t.Error("self MoveFrom must not drop storage")
	}
	a.Release()
}

func TestSwap(t *testing.T) {
	p1, _ := newPayload(1)
	a := New(p1)
	var b Value[*payload]

	a.Swap(&b)
	if !a.Null() || b.Null() {
		t.Fatal("Swap did not exchange storage")
	}
	b.Release()
}

func TestConcurrentCopyRelease(t *testing.T) {
	p, _ := newPayload(1, 2, 3)
	root := New(p)
	defer root.Release()

	const workers = 8
	const iterations = 1000

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				c := root.Copy()
				if r, err := c.Read(); err != nil || len(r.items) != 3 {
					t.Errorf("Read() = %v, %v", r, err)
				}
				c.Release()
			}
		}()
	}
	wg.Wait()

	if got := root.RefCount(); got != 1 {
		t.Errorf("RefCount() after concurrent copies = %d, want 1", got)
	}
}
