package circuit

import (
	"fmt"
	"math"
	"strings"
)

// formatAngle formats a literal angle, using pi notation when the value
// matches a common fraction.
func formatAngle(val float64) string {
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}

	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}

	return fmt.Sprintf("%g", val)
}

func formatArgs(args []Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

// ToQASM renders the decomposed circuit as OpenQASM 2.0 text. Symbolic
// arguments are emitted by name ("p[3]"), so the output is the
// parameterized form; a trainer binds values before execution.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.numQubits)
	if n := c.NumClassicalBits(); n > 0 {
		fmt.Fprintf(&sb, "creg c[%d];\n", n)
	}
	sb.WriteString("\n")

	for _, op := range c.Decompose() {
		writeQASMOp(&sb, op)
	}
	return sb.String()
}

func writeQASMOp(sb *strings.Builder, op Op) {
	if op.Gate == "measure" {
		fmt.Fprintf(sb, "measure q[%d] -> c[%d];\n", op.Qubits[0], op.Cbit)
		return
	}

	if op.CondBit >= 0 {
		fmt.Fprintf(sb, "if (c[%d]==1) ", op.CondBit)
	}

	if len(op.Args) > 0 {
		fmt.Fprintf(sb, "%s(%s)", op.Gate, formatArgs(op.Args))
	} else {
		sb.WriteString(op.Gate)
	}

	qubits := make([]string, len(op.Qubits))
	for i, q := range op.Qubits {
		qubits[i] = fmt.Sprintf("q[%d]", q)
	}
	fmt.Fprintf(sb, " %s;\n", strings.Join(qubits, ", "))
}
