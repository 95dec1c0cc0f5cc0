// Package render draws circuit artifacts as terminal text: one wire
// per qubit, stepped columns, boxed gates, control dots, and a shared
// classical wire for mid-circuit measurements.
//
// The drawing consumes only the public circuit artifact; it has no
// access to builder internals.
package render

import (
	"fmt"
	"strings"

	"github.com/MHagelueken/squlearn/internal/circuit"
)

// placed is one primitive op assigned to a timeline step.
type placed struct {
	op   circuit.Op
	step int
}

// schedule assigns steps greedily: an op lands at the earliest step
// where its whole qubit span is free and, for conditioned ops, its
// classical bit has been written.
func schedule(ops []circuit.Op) ([]placed, int) {
	nextFree := make(map[int]int)
	cbitReady := make(map[int]int)
	var out []placed
	maxStep := 0

	for _, op := range ops {
		lo, hi := span(op)
		step := 0
		for q := lo; q <= hi; q++ {
			if nextFree[q] > step {
				step = nextFree[q]
			}
		}
		if op.CondBit >= 0 && cbitReady[op.CondBit] > step {
			step = cbitReady[op.CondBit]
		}
		for q := lo; q <= hi; q++ {
			nextFree[q] = step + 1
		}
		if op.Cbit >= 0 {
			cbitReady[op.Cbit] = step + 1
		}
		out = append(out, placed{op: op, step: step})
		if step+1 > maxStep {
			maxStep = step + 1
		}
	}
	return out, maxStep
}

func span(op circuit.Op) (lo, hi int) {
	lo, hi = op.Qubits[0], op.Qubits[0]
	for _, q := range op.Qubits {
		if q < lo {
			lo = q
		}
		if q > hi {
			hi = q
		}
	}
	return lo, hi
}

// gateLabel is the text inside a gate box.
func gateLabel(op circuit.Op) string {
	if op.Gate == "measure" {
		return "M"
	}
	if len(op.Args) == 0 {
		return strings.ToUpper(op.Gate)
	}
	parts := make([]string, len(op.Args))
	for i, a := range op.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", strings.ToUpper(op.Gate), strings.Join(parts, ","))
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// Circuit draws the decomposed circuit as plain text.
func Circuit(c *circuit.Circuit) string {
	return draw(c, Styles{})
}

// CircuitStyled draws the circuit with the default color scheme.
func CircuitStyled(c *circuit.Circuit) string {
	return draw(c, DefaultStyles())
}

func draw(c *circuit.Circuit, st Styles) string {
	ops, steps := schedule(c.Decompose())
	if steps == 0 {
		steps = 1
	}

	// Column widths follow the widest label placed in each step.
	widths := make([]int, steps)
	for i := range widths {
		widths[i] = minCellW
	}
	for _, p := range ops {
		if w := len(gateLabel(p.op)) + 4; w > widths[p.step] {
			widths[p.step] = w
		}
	}

	numCbits := c.NumClassicalBits()
	var sb strings.Builder

	for q := 0; q < c.NumQubits(); q++ {
		top := strings.Repeat(" ", labelW)
		mid := st.Label.Render(fmt.Sprintf("%-5s", fmt.Sprintf("q[%d]", q))) + st.Wire.Render("──")
		bot := strings.Repeat(" ", labelW)

		for s := 0; s < steps; s++ {
			t, m, b := renderCell(ops, s, q, widths[s], st)
			top += t
			mid += m
			bot += b
		}
		sb.WriteString(top + "\n")
		sb.WriteString(mid + "\n")
		sb.WriteString(bot + "\n")
	}

	if numCbits > 0 {
		wire := st.Classical.Render(fmt.Sprintf("%-5s", fmt.Sprintf("c%d", numCbits))) + st.Classical.Render("══")
		for s := 0; s < steps; s++ {
			w := widths[s]
			if classicalAt(ops, s) {
				dashL := (w - 1) / 2
				wire += st.Classical.Render(strings.Repeat("═", dashL) + "╩" + strings.Repeat("═", w-dashL-1))
			} else {
				wire += st.Classical.Render(strings.Repeat("═", w))
			}
		}
		sb.WriteString(wire + "\n")
	}

	return sb.String()
}

// classicalAt reports whether any op at step s touches the classical
// wire.
func classicalAt(ops []placed, s int) bool {
	for _, p := range ops {
		if p.step == s && (p.op.Cbit >= 0 || p.op.CondBit >= 0) {
			return true
		}
	}
	return false
}

// renderCell draws the three rows of the cell at (step, qubit).
func renderCell(ops []placed, step, qubit, w int, st Styles) (top, mid, bot string) {
	empty := strings.Repeat(" ", w)
	halfW := w / 2
	vert := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", w-halfW-1)
	cvert := strings.Repeat(" ", halfW) + st.Classical.Render("║") + strings.Repeat(" ", w-halfW-1)
	dashL := (w - 1) / 2
	dashR := w - dashL - 1

	var cur *placed
	role := ""
	vertAbove, vertBelow, passThrough, classicalBelow := false, false, false, false

	for i := range ops {
		p := &ops[i]
		if p.step != step {
			continue
		}
		lo, hi := span(p.op)
		if qubit >= lo && qubit <= hi {
			if qubit > lo {
				vertAbove = true
			}
			if qubit < hi {
				vertBelow = true
			}
		}
		operand := false
		for _, oq := range p.op.Qubits {
			if oq == qubit {
				operand = true
			}
		}
		if operand {
			cur = p
			switch {
			case p.op.Gate == "measure":
				role = "measure"
			case len(p.op.Qubits) > 1 && qubit == p.op.Qubits[len(p.op.Qubits)-1]:
				role = "target"
			case len(p.op.Qubits) > 1:
				role = "control"
			default:
				role = "single"
			}
		} else if qubit > lo && qubit < hi {
			passThrough = true
		}
		if (p.op.Cbit >= 0 || p.op.CondBit >= 0) && qubit > hi {
			classicalBelow = true
		}
	}

	top = empty
	bot = empty
	if vertAbove {
		top = vert
	}
	if vertBelow {
		bot = vert
	}
	if classicalBelow && !vertBelow {
		bot = cvert
	}

	switch {
	case cur != nil && role == "control":
		mid = st.Wire.Render(strings.Repeat("─", dashL)) + st.Control.Render("●") + st.Wire.Render(strings.Repeat("─", dashR))
	case cur != nil && role == "target" && cur.op.Gate == "cx":
		mid = st.Wire.Render(strings.Repeat("─", dashL)) + st.Gate.Render("⊕") + st.Wire.Render(strings.Repeat("─", dashR))
	case cur != nil && role == "target" && cur.op.Gate == "cz":
		mid = st.Wire.Render(strings.Repeat("─", dashL)) + st.Control.Render("●") + st.Wire.Render(strings.Repeat("─", dashR))
	case cur != nil:
		label := padCenter(gateLabel(cur.op), w-4)
		mid = st.Wire.Render("─") + st.Gate.Render("┤"+label+"├") + st.Wire.Render("─")
		if cur.op.Cbit >= 0 || cur.op.CondBit >= 0 {
			bot = cvert
		}
	case passThrough:
		mid = st.Wire.Render(strings.Repeat("─", dashL)) + st.Wire.Render("┼") + st.Wire.Render(strings.Repeat("─", dashR))
	case classicalBelow:
		mid = st.Wire.Render(strings.Repeat("─", dashL)) + st.Classical.Render("╫") + st.Wire.Render(strings.Repeat("─", dashR))
		top = cvert
		bot = cvert
	default:
		mid = st.Wire.Render(strings.Repeat("─", w))
	}

	return top, mid, bot
}
