package render

// Handle is a weak, generation-checked reference into a Table. It observes a
// renderable without keeping it alive: once the table releases the slot, the
// handle no longer resolves. The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

func (h Handle) IsZero() bool {
	return h.gen == 0
}

type tableSlot struct {
	renderable *Renderable
	gen        uint32
}

// Table is the strong owner of renderables. Slots are reused after release
// with a bumped generation, which expires every handle issued for the slot.
type Table struct {
	slots []tableSlot
	free  []uint32
}

func NewTable() *Table {
	return &Table{}
}

// Add stores r and returns its handle.
func (t *Table) Add(r *Renderable) Handle {
	if r == nil {
		panic("render: nil renderable")
	}
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[idx].renderable = r
		return Handle{index: idx, gen: t.slots[idx].gen}
	}
	t.slots = append(t.slots, tableSlot{renderable: r, gen: 1})
	return Handle{index: uint32(len(t.slots) - 1), gen: 1}
}

// Release drops the strong reference behind h. Outstanding handles for the
// slot stop resolving immediately.
func (t *Table) Release(h Handle) bool {
	if _, ok := t.Resolve(h); !ok {
		return false
	}
	t.slots[h.index].renderable = nil
	t.slots[h.index].gen++
	t.free = append(t.free, h.index)
	return true
}

// Resolve is the weak lock: it returns the renderable while the slot is
// live, and (nil, false) once released. Expiry is expected, not an error.
func (t *Table) Resolve(h Handle) (*Renderable, bool) {
	if h.IsZero() || int(h.index) >= len(t.slots) {
		return nil, false
	}
	slot := t.slots[h.index]
	if slot.renderable == nil || slot.gen != h.gen {
		return nil, false
	}
	return slot.renderable, true
}

// Len reports the number of live slots.
func (t *Table) Len() int {
	return len(t.slots) - len(t.free)
}
