// Package bytecode holds the instruction vocabulary of the class-file
// back end: JVM opcodes, the Emitter sink that stack manipulations write
// through, a recording emitter for listings and tests, and class-file
// version handling.
package bytecode

// Opcode represents a single JVM instruction
type Opcode byte

// Values match the JVM specification so a writer can copy them verbatim.
const (
	NOP         Opcode = 0x00
	ACONST_NULL Opcode = 0x01
	ICONST_M1   Opcode = 0x02
	ICONST_0    Opcode = 0x03
	ICONST_1    Opcode = 0x04
	ICONST_2    Opcode = 0x05
	ICONST_3    Opcode = 0x06
	ICONST_4    Opcode = 0x07
	ICONST_5    Opcode = 0x08
	LCONST_0    Opcode = 0x09
	LCONST_1    Opcode = 0x0a
	FCONST_0    Opcode = 0x0b
	FCONST_1    Opcode = 0x0c
	FCONST_2    Opcode = 0x0d
	DCONST_0    Opcode = 0x0e
	DCONST_1    Opcode = 0x0f
	BIPUSH      Opcode = 0x10
	SIPUSH      Opcode = 0x11
	LDC         Opcode = 0x12
	LDC2_W      Opcode = 0x14

	// Local variables
	ILOAD  Opcode = 0x15
	LLOAD  Opcode = 0x16
	FLOAD  Opcode = 0x17
	DLOAD  Opcode = 0x18
	ALOAD  Opcode = 0x19
	ISTORE Opcode = 0x36
	LSTORE Opcode = 0x37
	FSTORE Opcode = 0x38
	DSTORE Opcode = 0x39
	ASTORE Opcode = 0x3a

	// Stack
	POP  Opcode = 0x57
	POP2 Opcode = 0x58
	DUP  Opcode = 0x59
	DUP2 Opcode = 0x5c

	// Primitive widening
	I2L Opcode = 0x85
	I2F Opcode = 0x86
	I2D Opcode = 0x87
	L2F Opcode = 0x89
	L2D Opcode = 0x8a
	F2D Opcode = 0x8d

	// Returns
	IRETURN Opcode = 0xac
	LRETURN Opcode = 0xad
	FRETURN Opcode = 0xae
	DRETURN Opcode = 0xaf
	ARETURN Opcode = 0xb0
	RETURN  Opcode = 0xb1

	// Fields and methods
	GETSTATIC       Opcode = 0xb2
	PUTSTATIC       Opcode = 0xb3
	GETFIELD        Opcode = 0xb4
	PUTFIELD        Opcode = 0xb5
	INVOKEVIRTUAL   Opcode = 0xb6
	INVOKESPECIAL   Opcode = 0xb7
	INVOKESTATIC    Opcode = 0xb8
	INVOKEINTERFACE Opcode = 0xb9

	// Objects
	NEW        Opcode = 0xbb
	CHECKCAST  Opcode = 0xc0
	INSTANCEOF Opcode = 0xc1
)

// OpcodeNames maps opcodes to their mnemonic (for listings)
var OpcodeNames = map[Opcode]string{
	NOP:         "NOP",
	ACONST_NULL: "ACONST_NULL",
	ICONST_M1:   "ICONST_M1",
	ICONST_0:    "ICONST_0",
	ICONST_1:    "ICONST_1",
	ICONST_2:    "ICONST_2",
	ICONST_3:    "ICONST_3",
	ICONST_4:    "ICONST_4",
	ICONST_5:    "ICONST_5",
	LCONST_0:    "LCONST_0",
	LCONST_1:    "LCONST_1",
	FCONST_0:    "FCONST_0",
	FCONST_1:    "FCONST_1",
	FCONST_2:    "FCONST_2",
	DCONST_0:    "DCONST_0",
	DCONST_1:    "DCONST_1",
	BIPUSH:      "BIPUSH",
	SIPUSH:      "SIPUSH",
	LDC:         "LDC",
	LDC2_W:      "LDC2_W",

	ILOAD:  "ILOAD",
	LLOAD:  "LLOAD",
	FLOAD:  "FLOAD",
	DLOAD:  "DLOAD",
	ALOAD:  "ALOAD",
	ISTORE: "ISTORE",
	LSTORE: "LSTORE",
	FSTORE: "FSTORE",
	DSTORE: "DSTORE",
	ASTORE: "ASTORE",

	POP:  "POP",
	POP2: "POP2",
	DUP:  "DUP",
	DUP2: "DUP2",

	I2L: "I2L",
	I2F: "I2F",
	I2D: "I2D",
	L2F: "L2F",
	L2D: "L2D",
	F2D: "F2D",

	IRETURN: "IRETURN",
	LRETURN: "LRETURN",
	FRETURN: "FRETURN",
	DRETURN: "DRETURN",
	ARETURN: "ARETURN",
	RETURN:  "RETURN",

	GETSTATIC:       "GETSTATIC",
	PUTSTATIC:       "PUTSTATIC",
	GETFIELD:        "GETFIELD",
	PUTFIELD:        "PUTFIELD",
	INVOKEVIRTUAL:   "INVOKEVIRTUAL",
	INVOKESPECIAL:   "INVOKESPECIAL",
	INVOKESTATIC:    "INVOKESTATIC",
	INVOKEINTERFACE: "INVOKEINTERFACE",

	NEW:        "NEW",
	CHECKCAST:  "CHECKCAST",
	INSTANCEOF: "INSTANCEOF",
}

// String returns the mnemonic of the opcode
func (op Opcode) String() string {
	if name, ok := OpcodeNames[op]; ok {
		return name
	}
	return "UNKNOWN"
}
