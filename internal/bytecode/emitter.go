package bytecode

// TypeRef is a class constant as pushed by LDC (a descriptor such as
// "Ljava/lang/String;" or "[I").
type TypeRef struct {
	Descriptor string
}

// Emitter is the instruction sink stack manipulations write through.
// It is single-writer: one manipulation tree is applied to one emitter by
// one goroutine at a time.
type Emitter interface {
	// VisitInsn emits an instruction without operands
	VisitInsn(op Opcode)

	// VisitIntInsn emits BIPUSH or SIPUSH with its immediate operand
	VisitIntInsn(op Opcode, operand int)

	// VisitVarInsn emits a local variable load or store
	VisitVarInsn(op Opcode, slot int)

	// VisitTypeInsn emits NEW, CHECKCAST or INSTANCEOF
	VisitTypeInsn(op Opcode, internalName string)

	// VisitLdcInsn loads a pooled constant: int32, int64, float32,
	// float64, string or TypeRef.
	VisitLdcInsn(value any)

	// VisitFieldInsn emits a field access
	VisitFieldInsn(op Opcode, owner, name, descriptor string)

	// VisitMethodInsn emits a method invocation
	VisitMethodInsn(op Opcode, owner, name, descriptor string, isInterface bool)
}
