package bytecode

import (
	"math"
	"strings"
	"testing"
)

func TestParseJavaVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    ClassFileVersion
		wantErr bool
	}{
		{input: "1.4", want: Java4},
		{input: "1.8", want: Java8},
		{input: "8", want: Java8},
		{input: "11", want: Java11},
		{input: "17.0.2", want: Java17},
		{input: "21", want: Java21},
		{input: "latest", wantErr: true},
		{input: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseJavaVersion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseJavaVersion(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseJavaVersion(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseJavaVersion(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassConstantSupport(t *testing.T) {
	if Java4.SupportsClassConstants() {
		t.Errorf("Java 4 should not support class constants")
	}
	if !Java5.SupportsClassConstants() {
		t.Errorf("Java 5 should support class constants")
	}
}

func TestRecorderConstantPool(t *testing.T) {
	rec := NewRecorder()
	rec.VisitLdcInsn(int32(1000))
	rec.VisitLdcInsn("foo")
	rec.VisitLdcInsn(int32(1000))
	rec.VisitLdcInsn(int64(7))

	if len(rec.Constants) != 3 {
		t.Fatalf("expected 3 pooled constants, got %d: %v", len(rec.Constants), rec.Constants)
	}
	if rec.Code[0].Constant != rec.Code[2].Constant {
		t.Errorf("equal constants should share a pool entry")
	}
	if rec.Code[3].Op != LDC2_W {
		t.Errorf("long constant should use LDC2_W, got %s", rec.Code[3].Op)
	}
}

func TestRecorderNaNConstant(t *testing.T) {
	rec := NewRecorder()
	rec.VisitLdcInsn(math.NaN())
	rec.VisitLdcInsn(math.NaN())
	rec.VisitLdcInsn(float32(math.NaN()))
	if len(rec.Constants) != 2 {
		t.Errorf("expected one double and one float NaN entry, got %v", rec.Constants)
	}
}

func TestDisassemble(t *testing.T) {
	rec := NewRecorder()
	rec.VisitVarInsn(ALOAD, 0)
	rec.VisitMethodInsn(INVOKEVIRTUAL, "java/lang/Long", "longValue", "()J", false)
	rec.VisitLdcInsn(TypeRef{Descriptor: "Ljava/lang/String;"})
	rec.VisitInsn(RETURN)

	out := Disassemble(rec, "test")
	for _, want := range []string{
		"== test ==",
		"ALOAD",
		"java/lang/Long.longValue()J",
		"Ljava/lang/String;",
		"RETURN",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, ansiReset) {
		t.Errorf("plain listing should not contain escape codes")
	}
	if !strings.Contains(DisassembleColor(rec, "test"), ansiReset) {
		t.Errorf("colored listing should contain escape codes")
	}
}
