package circuit

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// TestAppend_TracksVectors tests that symbolic args grow their vector's
// declared length.
func TestAppend_TracksVectors(t *testing.T) {
	c := New(2)
	c.Append(NewParamOp("ry", []Arg{Sym(ParamVector, 0)}, 0))
	c.Append(NewParamOp("ry", []Arg{Sym(ParamVector, 4)}, 1))
	c.Append(NewParamOp("rx", []Arg{Sym(FeatureVector, 1)}, 0))

	if c.NumParameters() != 5 {
		t.Errorf("Expected 5 trainable parameters, got %d", c.NumParameters())
	}
	if c.NumFeatures() != 2 {
		t.Errorf("Expected 2 features, got %d", c.NumFeatures())
	}
	if c.Len() != 3 {
		t.Errorf("Expected 3 ops, got %d", c.Len())
	}
}

// TestAppend_OutOfRangePanics tests register bounds checking.
func TestAppend_OutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range qubit")
		}
	}()
	c := New(2)
	c.Append(NewOp("x", 2))
}

// TestDecompose_FlattensBlocks tests the primitive-gate view.
func TestDecompose_FlattensBlocks(t *testing.T) {
	inner := []Op{
		NewOp("cx", 0, 1),
		NewParamOp("ry", []Arg{Sym(ParamVector, 0)}, 1),
	}
	c := New(2)
	c.Append(NewOp("h", 0))
	c.Append(NewBlock("conv", []int{0, 1}, inner))

	if c.Len() != 2 {
		t.Errorf("Expected 2 top-level ops, got %d", c.Len())
	}

	flat := c.Decompose()
	if len(flat) != 3 {
		t.Fatalf("Expected 3 primitive ops, got %d", len(flat))
	}
	want := []string{"h", "cx", "ry"}
	for i, op := range flat {
		if op.Gate != want[i] {
			t.Errorf("Op %d: expected %q, got %q", i, want[i], op.Gate)
		}
	}
}

// TestCompose_Basic tests register and parameter-space union.
func TestCompose_Basic(t *testing.T) {
	a := AngleEncoding(3, "rx")
	b := New(2)
	b.Append(NewParamOp("ry", []Arg{Sym(ParamVector, 0)}, 0))

	c, err := Compose(a, b)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if c.NumQubits() != 3 {
		t.Errorf("Expected register 3, got %d", c.NumQubits())
	}
	if c.NumFeatures() != 3 {
		t.Errorf("Expected 3 features, got %d", c.NumFeatures())
	}
	if c.NumParameters() != 1 {
		t.Errorf("Expected 1 parameter, got %d", c.NumParameters())
	}
	if c.Len() != a.Len()+b.Len() {
		t.Errorf("Expected %d ops, got %d", a.Len()+b.Len(), c.Len())
	}
}

// TestCompose_Associative tests that register size and parameter count
// do not depend on composition grouping.
func TestCompose_Associative(t *testing.T) {
	mk := func(n int, vector string, params int) *Circuit {
		c := New(n)
		for i := 0; i < params; i++ {
			c.Append(NewParamOp("ry", []Arg{Sym(vector, i)}, i%n))
		}
		return c
	}
	a := mk(2, "pa", 3)
	b := mk(4, "pb", 5)
	c := mk(3, "pc", 2)

	ab, err := Compose(a, b)
	if err != nil {
		t.Fatalf("a+b: %v", err)
	}
	left, err := Compose(ab, c)
	if err != nil {
		t.Fatalf("(a+b)+c: %v", err)
	}
	bc, err := Compose(b, c)
	if err != nil {
		t.Fatalf("b+c: %v", err)
	}
	right, err := Compose(a, bc)
	if err != nil {
		t.Fatalf("a+(b+c): %v", err)
	}

	if left.NumQubits() != right.NumQubits() {
		t.Errorf("Register size differs: %d vs %d", left.NumQubits(), right.NumQubits())
	}
	if left.NumParameters() != right.NumParameters() {
		t.Errorf("Parameter count differs: %d vs %d", left.NumParameters(), right.NumParameters())
	}
	if left.NumParameters() != 10 {
		t.Errorf("Expected 10 parameters total, got %d", left.NumParameters())
	}
}

// TestCompose_ParameterCollision tests incompatible same-name vectors.
func TestCompose_ParameterCollision(t *testing.T) {
	a := New(2)
	a.Append(NewParamOp("ry", []Arg{Sym(ParamVector, 2)}, 0)) // arity 3
	b := New(2)
	b.Append(NewParamOp("ry", []Arg{Sym(ParamVector, 0)}, 0)) // arity 1

	if _, err := Compose(a, b); !errors.Is(err, ErrParameterCollision) {
		t.Errorf("Expected ErrParameterCollision, got %v", err)
	}
}

// TestCompose_FeatureArityMismatch tests differing feature counts.
func TestCompose_FeatureArityMismatch(t *testing.T) {
	a := AngleEncoding(3, "rx")
	b := AngleEncoding(2, "rx")

	if _, err := Compose(a, b); !errors.Is(err, ErrFeatureArityMismatch) {
		t.Errorf("Expected ErrFeatureArityMismatch, got %v", err)
	}
}

// TestCompose_SharedEqualVectors tests that equal-arity vectors merge.
func TestCompose_SharedEqualVectors(t *testing.T) {
	a := AngleEncoding(3, "rx")
	b := AngleEncoding(3, "ry")

	c, err := Compose(a, b)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if c.NumFeatures() != 3 {
		t.Errorf("Expected 3 shared features, got %d", c.NumFeatures())
	}
}

// TestCompose_ShiftsClassicalBits tests that the right side's classical
// bits land after the left side's.
func TestCompose_ShiftsClassicalBits(t *testing.T) {
	a := New(2)
	a.Append(NewMeasure(0, 0))
	b := New(2)
	b.Append(NewMeasure(1, 0))
	b.Append(Conditioned(NewOp("x", 0), 0))

	c, err := Compose(a, b)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	ops := c.Decompose()
	if ops[1].Cbit != 1 {
		t.Errorf("Expected shifted measure bit 1, got %d", ops[1].Cbit)
	}
	if ops[2].CondBit != 1 {
		t.Errorf("Expected shifted condition bit 1, got %d", ops[2].CondBit)
	}
	if c.NumClassicalBits() != 2 {
		t.Errorf("Expected 2 classical bits, got %d", c.NumClassicalBits())
	}
}

// TestRenameVector tests disjoint-namespace renaming.
func TestRenameVector(t *testing.T) {
	c := New(2)
	c.Append(NewParamOp("ry", []Arg{Sym(ParamVector, 0)}, 0))
	c.Append(NewParamOp("ry", []Arg{Sym(ParamVector, 1)}, 1))

	if err := c.RenameVector(ParamVector, "p1"); err != nil {
		t.Fatalf("RenameVector failed: %v", err)
	}
	if c.VectorLen(ParamVector) != 0 {
		t.Errorf("Old vector should be gone, has length %d", c.VectorLen(ParamVector))
	}
	if c.VectorLen("p1") != 2 {
		t.Errorf("Expected renamed vector length 2, got %d", c.VectorLen("p1"))
	}
	if got := c.Ops()[0].Args[0].Vector; got != "p1" {
		t.Errorf("Expected rebound arg vector p1, got %q", got)
	}
}

// TestRenameVector_Collision tests renaming onto an incompatible vector.
func TestRenameVector_Collision(t *testing.T) {
	c := New(2)
	c.Append(NewParamOp("ry", []Arg{Sym("a", 0)}, 0))
	c.Append(NewParamOp("ry", []Arg{Sym("b", 1)}, 1))

	if err := c.RenameVector("a", "b"); !errors.Is(err, ErrParameterCollision) {
		t.Errorf("Expected ErrParameterCollision, got %v", err)
	}
}

// TestToQASM tests header, registers, and symbolic emission.
func TestToQASM(t *testing.T) {
	c := New(2)
	c.Append(NewOp("h", 0))
	c.Append(NewParamOp("ry", []Arg{Sym(ParamVector, 0)}, 1))
	c.Append(NewOp("cx", 0, 1))
	c.Append(NewMeasure(1, 0))
	c.Append(Conditioned(NewOp("x", 0), 0))

	qasm := c.ToQASM()
	for _, want := range []string{
		"OPENQASM 2.0;",
		"qreg q[2];",
		"creg c[1];",
		"h q[0];",
		"ry(p[0]) q[1];",
		"cx q[0], q[1];",
		"measure q[1] -> c[0];",
		"if (c[0]==1) x q[0];",
	} {
		if !strings.Contains(qasm, want) {
			t.Errorf("QASM output missing %q:\n%s", want, qasm)
		}
	}
}

// TestFormatAngle tests pi notation for literal args.
func TestFormatAngle(t *testing.T) {
	tests := []struct {
		val  float64
		want string
	}{
		{math.Pi, "pi"},
		{-math.Pi / 2, "-pi/2"},
		{3 * math.Pi / 4, "3*pi/4"},
		{0.5, "0.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := Lit(tt.val).String(); got != tt.want {
			t.Errorf("formatAngle(%v): expected %q, got %q", tt.val, tt.want, got)
		}
	}
}
