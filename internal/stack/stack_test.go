package stack

import (
	"strings"
	"testing"

	"github.com/funvibe/bytegen/internal/bytecode"
)

// step is a fake manipulation with a fixed size
type step struct {
	valid bool
	size  Size
	op    bytecode.Opcode
}

func (s step) IsValid() bool { return s.valid }

func (s step) Apply(e bytecode.Emitter, _ *Context) Size {
	e.VisitInsn(s.op)
	return s.size
}

func TestStackSize(t *testing.T) {
	tests := []struct {
		size       StackSize
		increasing Size
		decreasing Size
	}{
		{Zero, Size{0, 0}, Size{0, 0}},
		{Single, Size{1, 1}, Size{-1, 0}},
		{Double, Size{2, 2}, Size{-2, 0}},
	}
	for _, tt := range tests {
		if got := tt.size.ToIncreasingSize(); got != tt.increasing {
			t.Errorf("%v increasing = %v, want %v", tt.size, got, tt.increasing)
		}
		if got := tt.size.ToDecreasingSize(); got != tt.decreasing {
			t.Errorf("%v decreasing = %v, want %v", tt.size, got, tt.decreasing)
		}
	}
	if Single.Maximum(Double) != Double || Double.Maximum(Zero) != Double {
		t.Errorf("Maximum picks the larger size")
	}
}

func TestSizeAggregate(t *testing.T) {
	tests := []struct {
		a, b Size
		want Size
	}{
		{Size{1, 1}, Size{1, 1}, Size{2, 2}},
		{Size{2, 2}, Size{-2, 0}, Size{0, 2}},
		{Size{-1, 0}, Size{2, 2}, Size{1, 1}},
		{Size{1, 3}, Size{0, 1}, Size{1, 3}},
		{ZeroSize, Size{1, 1}, Size{1, 1}},
	}
	for _, tt := range tests {
		if got := tt.a.Aggregate(tt.b); got != tt.want {
			t.Errorf("%v.Aggregate(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompound(t *testing.T) {
	steps := []Manipulation{
		step{true, Size{2, 2}, bytecode.LCONST_0},
		step{true, Size{1, 1}, bytecode.ICONST_0},
		step{true, Size{-2, 0}, bytecode.POP2},
		step{true, Size{1, 3}, bytecode.NOP},
	}
	c := Compound(steps...)
	if !c.IsValid() {
		t.Fatalf("compound of valid steps should be valid")
	}
	rec := bytecode.NewRecorder()
	size := c.Apply(rec, nil)

	// impacts: 2, 3, 1, 2; maxima: 2, 3, 3, 1+3
	if want := (Size{Impact: 2, Maximal: 4}); size != want {
		t.Errorf("size = %v, want %v", size, want)
	}
	if rec.Len() != len(steps) {
		t.Errorf("applied %d steps, want %d", rec.Len(), len(steps))
	}
}

func TestCompoundValidity(t *testing.T) {
	valid := step{valid: true, size: Size{1, 1}, op: bytecode.NOP}
	invalid := step{valid: false}

	tests := []struct {
		name  string
		m     Manipulation
		valid bool
	}{
		{"empty", Compound(), true},
		{"all valid", Compound(valid, valid), true},
		{"first invalid", Compound(invalid, valid), false},
		{"last invalid", Compound(valid, valid, invalid), false},
		{"nested invalid", Compound(valid, Compound(valid, Illegal)), false},
	}
	for _, tt := range tests {
		if tt.m.IsValid() != tt.valid {
			t.Errorf("%s: valid = %v, want %v", tt.name, tt.m.IsValid(), tt.valid)
		}
	}

	rec := bytecode.NewRecorder()
	func() {
		defer func() {
			err, ok := recover().(*IllegalApplicationError)
			if !ok {
				t.Fatalf("expected IllegalApplicationError panic")
			}
			if !strings.Contains(err.Error(), "illegal") {
				t.Errorf("unexpected message %q", err.Error())
			}
		}()
		Compound(valid, invalid).Apply(rec, nil)
	}()
	if rec.Len() != 0 {
		t.Errorf("invalid compound must not emit a prefix, got %v", rec.Code)
	}
}

func TestCompoundFlattening(t *testing.T) {
	a := step{true, Size{1, 1}, bytecode.ICONST_1}
	b := step{true, Size{1, 1}, bytecode.ICONST_2}

	if Compound(Trivial, a, Trivial) != Manipulation(a) {
		t.Errorf("single member compound should be the member itself")
	}
	if Compound(Trivial, Trivial) != Trivial {
		t.Errorf("compound of trivial steps should be Trivial")
	}
	c, ok := Compound(a, Compound(b, a)).(*compound)
	if !ok || len(c.Members()) != 3 {
		t.Errorf("nested compounds should be flattened, got %v", c)
	}
}

func TestRemovalAndDuplication(t *testing.T) {
	tests := []struct {
		m    Manipulation
		op   bytecode.Opcode
		size Size
	}{
		{Removal(Single), bytecode.POP, Size{-1, 0}},
		{Removal(Double), bytecode.POP2, Size{-2, 0}},
		{Duplication(Single), bytecode.DUP, Size{1, 1}},
		{Duplication(Double), bytecode.DUP2, Size{2, 2}},
	}
	for _, tt := range tests {
		rec := bytecode.NewRecorder()
		if got := tt.m.Apply(rec, nil); got != tt.size {
			t.Errorf("%v size = %v, want %v", tt.m, got, tt.size)
		}
		if rec.Code[0].Op != tt.op {
			t.Errorf("got %s, want %s", rec.Code[0].Op, tt.op)
		}
	}
	if Removal(Zero) != Trivial || Duplication(Zero) != Trivial {
		t.Errorf("zero-sized removal and duplication are trivial")
	}
	if Removal(StackSize(3)).IsValid() {
		t.Errorf("no instruction removes three slots")
	}
}

func TestIllegalApply(t *testing.T) {
	defer func() {
		if _, ok := recover().(*IllegalApplicationError); !ok {
			t.Errorf("applying Illegal should panic")
		}
	}()
	Illegal.Apply(bytecode.NewRecorder(), nil)
}

func TestContextCache(t *testing.T) {
	ctx := NewContext("com/example/Gen", bytecode.Java8)
	a := step{true, Size{1, 1}, bytecode.ICONST_1}
	b := step{true, Size{1, 1}, bytecode.ICONST_2}

	fa := ctx.Cache(a, "I")
	fb := ctx.Cache(b, "I")
	again := ctx.Cache(a, "I")
	other := ctx.Cache(a, "Ljava/lang/Object;")

	if fa.Name != again.Name {
		t.Errorf("equal manipulations should share a field: %s vs %s", fa.Name, again.Name)
	}
	if fa.Name == fb.Name || fa.Name == other.Name {
		t.Errorf("different manipulations or descriptors need distinct fields")
	}
	if !strings.HasPrefix(fa.Name, "cachedValue$") || len(fa.Name) != len("cachedValue$")+8 {
		t.Errorf("unexpected field name %q", fa.Name)
	}
	if fields := ctx.CachedFields(); len(fields) != 3 || fields[0].Initializer != Manipulation(a) {
		t.Errorf("cached fields = %v", fields)
	}
}
