package bytecode

import "math"

// Instruction is one recorded emitter call
type Instruction struct {
	Op Opcode

	// Operand is the immediate of BIPUSH/SIPUSH or the slot of a var insn
	Operand int

	// Constant is an index into the recorder's constant pool, -1 if unused
	Constant int

	// Owner, Name and Descriptor describe type, field and method operands
	Owner      string
	Name       string
	Descriptor string
	Interface  bool
}

// Recorder is an Emitter that keeps every instruction in order together
// with a deduplicated constant pool.
type Recorder struct {
	// Code is the recorded instruction sequence
	Code []Instruction

	// Constants pool - literals and type references
	Constants []any
}

// NewRecorder creates a new empty recorder
func NewRecorder() *Recorder {
	return &Recorder{
		Code:      make([]Instruction, 0, 16),
		Constants: make([]any, 0, 8),
	}
}

// AddConstant adds a constant to the pool and returns its index.
// Equal constants share a single entry; floating point constants are
// compared by bit pattern so NaN matches itself.
func (r *Recorder) AddConstant(value any) int {
	key := constantKey(value)
	for i, c := range r.Constants {
		if constantKey(c) == key {
			return i
		}
	}
	r.Constants = append(r.Constants, value)
	return len(r.Constants) - 1
}

type (
	float32Key uint32
	float64Key uint64
)

func constantKey(value any) any {
	switch v := value.(type) {
	case float32:
		return float32Key(math.Float32bits(v))
	case float64:
		return float64Key(math.Float64bits(v))
	}
	return value
}

func (r *Recorder) emit(in Instruction) {
	r.Code = append(r.Code, in)
}

func (r *Recorder) VisitInsn(op Opcode) {
	r.emit(Instruction{Op: op, Constant: -1})
}

func (r *Recorder) VisitIntInsn(op Opcode, operand int) {
	r.emit(Instruction{Op: op, Operand: operand, Constant: -1})
}

func (r *Recorder) VisitVarInsn(op Opcode, slot int) {
	r.emit(Instruction{Op: op, Operand: slot, Constant: -1})
}

func (r *Recorder) VisitTypeInsn(op Opcode, internalName string) {
	r.emit(Instruction{Op: op, Owner: internalName, Constant: -1})
}

func (r *Recorder) VisitLdcInsn(value any) {
	op := LDC
	switch value.(type) {
	case int64, float64:
		op = LDC2_W
	}
	r.emit(Instruction{Op: op, Constant: r.AddConstant(value)})
}

func (r *Recorder) VisitFieldInsn(op Opcode, owner, name, descriptor string) {
	r.emit(Instruction{Op: op, Owner: owner, Name: name, Descriptor: descriptor, Constant: -1})
}

func (r *Recorder) VisitMethodInsn(op Opcode, owner, name, descriptor string, isInterface bool) {
	r.emit(Instruction{
		Op:         op,
		Owner:      owner,
		Name:       name,
		Descriptor: descriptor,
		Interface:  isInterface,
		Constant:   -1,
	})
}

// Len returns the number of recorded instructions
func (r *Recorder) Len() int {
	return len(r.Code)
}

// Reset drops recorded instructions and constants
func (r *Recorder) Reset() {
	r.Code = r.Code[:0]
	r.Constants = r.Constants[:0]
}
