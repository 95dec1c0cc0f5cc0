package qcnn

import "fmt"

// qubitState is the lifecycle tag of one register position. A qubit is
// either still active or permanently pooled; reference bookkeeping is
// kept separately so the shrink rule stays a single comparison.
type qubitState uint8

const (
	stateActive qubitState = iota
	statePooled
)

// tracker maintains the ordered active set and per-qubit lifecycle
// tags across layer applications and register resizes.
type tracker struct {
	tags       []qubitState
	referenced []bool // touched by any applied layer
	active     []int  // ascending register positions still active
}

func newTracker(n int) *tracker {
	t := &tracker{
		tags:       make([]qubitState, n),
		referenced: make([]bool, n),
		active:     make([]int, n),
	}
	for i := range t.active {
		t.active[i] = i
	}
	return t
}

func (t *tracker) size() int {
	return len(t.tags)
}

func (t *tracker) activeQubits() []int {
	out := make([]int, len(t.active))
	copy(out, t.active)
	return out
}

func (t *tracker) isActive(q int) bool {
	return q >= 0 && q < len(t.tags) && t.tags[q] == stateActive
}

func (t *tracker) markReferenced(qubits ...int) {
	for _, q := range qubits {
		t.referenced[q] = true
	}
}

// checkPooling validates pooling groups without mutating: every input
// must be active and appear in exactly one group, and every survivor
// must be one of its group's inputs.
func (t *tracker) checkPooling(groups, survivors [][]int) error {
	seen := make(map[int]bool)
	for gi, group := range groups {
		for _, q := range group {
			if !t.isActive(q) {
				return fmt.Errorf("pooling group %d: qubit %d: %w", gi, q, ErrInvalidAddressing)
			}
			if seen[q] {
				return fmt.Errorf("pooling group %d: qubit %d appears twice: %w", gi, q, ErrInvalidAddressing)
			}
			seen[q] = true
		}
		for _, s := range survivors[gi] {
			if !contains(group, s) {
				return fmt.Errorf("pooling group %d: survivor %d not among inputs: %w", gi, s, ErrInvalidAddressing)
			}
		}
	}
	return nil
}

// applyPooling removes the non-surviving members of every group from
// the active set and tags them pooled. Callers validate first via
// checkPooling; the two-step split keeps layer application atomic.
func (t *tracker) applyPooling(groups, survivors [][]int) {
	dropped := make(map[int]bool)
	for gi, group := range groups {
		for _, q := range group {
			t.referenced[q] = true
			if !contains(survivors[gi], q) {
				t.tags[q] = statePooled
				dropped[q] = true
			}
		}
	}
	kept := t.active[:0]
	for _, q := range t.active {
		if !dropped[q] {
			kept = append(kept, q)
		}
	}
	t.active = kept
}

// collapse retains only the given qubit, pooling every other active
// position. Used by the fully-connected layer.
func (t *tracker) collapse(keep int) {
	for _, q := range t.active {
		t.referenced[q] = true
		if q != keep {
			t.tags[q] = statePooled
		}
	}
	t.active = t.active[:0]
	t.active = append(t.active, keep)
}

// grow appends fresh register positions, all active. Always legal.
func (t *tracker) grow(n int) {
	for q := t.size(); q < n; q++ {
		t.tags = append(t.tags, stateActive)
		t.referenced = append(t.referenced, false)
		t.active = append(t.active, q)
	}
}

// shrink removes the highest register positions down to size n. A
// removed position must be active and untouched by any applied layer:
// the strict rule is that any reference by an applied layer pins the
// qubit, and a pooled qubit can never come back through a resize.
func (t *tracker) shrink(n int) error {
	for q := n; q < t.size(); q++ {
		if t.tags[q] == statePooled || t.referenced[q] {
			return fmt.Errorf("shrink to %d: qubit %d: %w", n, q, ErrIrreversibleReduction)
		}
	}
	t.tags = t.tags[:n]
	t.referenced = t.referenced[:n]
	kept := t.active[:0]
	for _, q := range t.active {
		if q < n {
			kept = append(kept, q)
		}
	}
	t.active = kept
	return nil
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
