package circuit

// AngleEncoding builds the minimal feature-encoding circuit: one
// rotation gate per qubit, each consuming one feature symbol. The gate
// is typically "rx" or "ry"; it is applied as gate(x[i]) on qubit i.
//
// Encoding circuits are the only place feature symbols enter a model;
// the QCNN builder itself issues trainable symbols exclusively, and the
// two are joined with Compose.
func AngleEncoding(numQubits int, gate string) *Circuit {
	c := New(numQubits)
	for q := 0; q < numQubits; q++ {
		c.Append(NewParamOp(gate, []Arg{Sym(FeatureVector, q)}, q))
	}
	return c
}
