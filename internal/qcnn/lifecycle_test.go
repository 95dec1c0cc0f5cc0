package qcnn

import (
	"errors"
	"testing"
)

func TestTracker_InitialState(t *testing.T) {
	tr := newTracker(4)
	if tr.size() != 4 {
		t.Errorf("Expected size 4, got %d", tr.size())
	}
	want := []int{0, 1, 2, 3}
	got := tr.activeQubits()
	if !equalInts(got, want) {
		t.Errorf("Expected active %v, got %v", want, got)
	}
}

func TestTracker_ApplyPooling(t *testing.T) {
	tr := newTracker(4)
	groups := [][]int{{0, 1}, {2, 3}}
	survivors := [][]int{{0}, {2}}

	if err := tr.checkPooling(groups, survivors); err != nil {
		t.Fatalf("checkPooling failed: %v", err)
	}
	tr.applyPooling(groups, survivors)

	if !equalInts(tr.activeQubits(), []int{0, 2}) {
		t.Errorf("Expected active [0 2], got %v", tr.activeQubits())
	}
	if tr.isActive(1) || tr.isActive(3) {
		t.Error("Pooled qubits should not be active")
	}
}

func TestTracker_CheckPooling_InactiveInput(t *testing.T) {
	tr := newTracker(4)
	tr.applyPooling([][]int{{0, 1}}, [][]int{{0}})

	err := tr.checkPooling([][]int{{0, 1}}, [][]int{{0}})
	if !errors.Is(err, ErrInvalidAddressing) {
		t.Errorf("Expected ErrInvalidAddressing for pooled input, got %v", err)
	}
}

func TestTracker_CheckPooling_DuplicateInput(t *testing.T) {
	tr := newTracker(4)
	err := tr.checkPooling([][]int{{0, 1}, {1, 2}}, [][]int{{0}, {1}})
	if !errors.Is(err, ErrInvalidAddressing) {
		t.Errorf("Expected ErrInvalidAddressing for duplicate input, got %v", err)
	}
}

func TestTracker_CheckPooling_SurvivorOutsideGroup(t *testing.T) {
	tr := newTracker(4)
	err := tr.checkPooling([][]int{{0, 1}}, [][]int{{2}})
	if !errors.Is(err, ErrInvalidAddressing) {
		t.Errorf("Expected ErrInvalidAddressing for outside survivor, got %v", err)
	}
}

func TestTracker_Grow(t *testing.T) {
	tr := newTracker(2)
	tr.applyPooling([][]int{{0, 1}}, [][]int{{0}})
	tr.grow(4)

	if !equalInts(tr.activeQubits(), []int{0, 2, 3}) {
		t.Errorf("Expected active [0 2 3], got %v", tr.activeQubits())
	}
	if tr.isActive(1) {
		t.Error("Pooled qubit must stay pooled across a grow")
	}
}

func TestTracker_Shrink(t *testing.T) {
	tr := newTracker(4)
	if err := tr.shrink(2); err != nil {
		t.Fatalf("Shrink of untouched qubits failed: %v", err)
	}
	if !equalInts(tr.activeQubits(), []int{0, 1}) {
		t.Errorf("Expected active [0 1], got %v", tr.activeQubits())
	}
}

func TestTracker_Shrink_ReferencedQubit(t *testing.T) {
	tr := newTracker(4)
	tr.markReferenced(3)

	if err := tr.shrink(3); !errors.Is(err, ErrIrreversibleReduction) {
		t.Errorf("Expected ErrIrreversibleReduction, got %v", err)
	}
	if tr.size() != 4 {
		t.Errorf("Failed shrink must not resize, got %d", tr.size())
	}
}

func TestTracker_Shrink_PooledQubit(t *testing.T) {
	tr := newTracker(4)
	tr.applyPooling([][]int{{2, 3}}, [][]int{{2}})

	if err := tr.shrink(3); !errors.Is(err, ErrIrreversibleReduction) {
		t.Errorf("Expected ErrIrreversibleReduction, got %v", err)
	}
}

func TestTracker_Collapse(t *testing.T) {
	tr := newTracker(4)
	tr.collapse(0)
	if !equalInts(tr.activeQubits(), []int{0}) {
		t.Errorf("Expected active [0], got %v", tr.activeQubits())
	}
	for q := 1; q < 4; q++ {
		if tr.isActive(q) {
			t.Errorf("Qubit %d should be pooled after collapse", q)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
