package bytecode

import (
	"fmt"
	"strings"
)

const (
	ansiMnemonic = "\x1b[36m"
	ansiReset    = "\x1b[0m"
)

// Disassemble returns a human-readable listing of the recorded code
func Disassemble(rec *Recorder, name string) string {
	return disassemble(rec, name, false)
}

// DisassembleColor is Disassemble with ANSI-highlighted mnemonics
func DisassembleColor(rec *Recorder, name string) string {
	return disassemble(rec, name, true)
}

func disassemble(rec *Recorder, name string, color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("== %s ==\n", name))

	for offset, in := range rec.Code {
		disassembleInstruction(&sb, rec, offset, in, color)
	}

	return sb.String()
}

func disassembleInstruction(sb *strings.Builder, rec *Recorder, offset int, in Instruction, color bool) {
	sb.WriteString(fmt.Sprintf("%04d ", offset))

	mnemonic := fmt.Sprintf("%-16s", in.Op.String())
	if color {
		mnemonic = ansiMnemonic + mnemonic + ansiReset
	}
	sb.WriteString(mnemonic)

	switch in.Op {
	case BIPUSH, SIPUSH:
		sb.WriteString(fmt.Sprintf(" %d\n", in.Operand))
	case ILOAD, LLOAD, FLOAD, DLOAD, ALOAD, ISTORE, LSTORE, FSTORE, DSTORE, ASTORE:
		sb.WriteString(fmt.Sprintf(" %d\n", in.Operand))
	case LDC, LDC2_W:
		constantInstruction(sb, rec, in.Constant)
	case NEW, CHECKCAST, INSTANCEOF:
		sb.WriteString(fmt.Sprintf(" %s\n", in.Owner))
	case GETSTATIC, PUTSTATIC, GETFIELD, PUTFIELD:
		sb.WriteString(fmt.Sprintf(" %s.%s : %s\n", in.Owner, in.Name, in.Descriptor))
	case INVOKEVIRTUAL, INVOKESPECIAL, INVOKESTATIC, INVOKEINTERFACE:
		itf := ""
		if in.Interface {
			itf = " (itf)"
		}
		sb.WriteString(fmt.Sprintf(" %s.%s%s%s\n", in.Owner, in.Name, in.Descriptor, itf))
	default:
		sb.WriteString("\n")
	}
}

func constantInstruction(sb *strings.Builder, rec *Recorder, idx int) {
	if idx >= 0 && idx < len(rec.Constants) {
		sb.WriteString(fmt.Sprintf(" %4d '%s'\n", idx, inspectConstant(rec.Constants[idx])))
	} else {
		sb.WriteString(fmt.Sprintf(" %4d (invalid)\n", idx))
	}
}

func inspectConstant(value any) string {
	switch v := value.(type) {
	case TypeRef:
		return v.Descriptor
	case string:
		return fmt.Sprintf("%q", v)
	case int64:
		return fmt.Sprintf("%dL", v)
	case float32:
		return fmt.Sprintf("%gF", v)
	case float64:
		return fmt.Sprintf("%gD", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
