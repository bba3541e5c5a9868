package environment

import "testing"

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("a", 1.0)

	got, ok := env.Get("a")
	if !ok {
		t.Fatalf("expected 'a' to be defined")
	}
	if got != 1.0 {
		t.Errorf("got %v, want 1.0", got)
	}
}

func TestGetUndefinedFails(t *testing.T) {
	env := New()
	if _, ok := env.Get("missing"); ok {
		t.Errorf("expected 'missing' to be undefined")
	}
}

func TestChildSeesParentBindings(t *testing.T) {
	parent := New()
	parent.Define("a", "outer")
	child := NewChild(parent)

	got, ok := child.Get("a")
	if !ok || got != "outer" {
		t.Errorf("got (%v, %v), want (outer, true)", got, ok)
	}
}

func TestChildShadowsParentWithoutMutatingIt(t *testing.T) {
	parent := New()
	parent.Define("a", "outer")
	child := NewChild(parent)
	child.Define("a", "inner")

	got, _ := child.Get("a")
	if got != "inner" {
		t.Errorf("child sees %v, want inner", got)
	}

	parentGot, _ := parent.Get("a")
	if parentGot != "outer" {
		t.Errorf("parent sees %v, want outer", parentGot)
	}
}

func TestAssignUpdatesNearestDefiningFrame(t *testing.T) {
	parent := New()
	parent.Define("a", 1.0)
	child := NewChild(parent)

	if ok := child.Assign("a", 2.0); !ok {
		t.Fatalf("expected assign to succeed")
	}

	got, _ := parent.Get("a")
	if got != 2.0 {
		t.Errorf("parent's binding is %v, want 2.0", got)
	}
}

func TestAssignToUndeclaredNameFails(t *testing.T) {
	env := New()
	if ok := env.Assign("missing", 1.0); ok {
		t.Errorf("expected assign to an undeclared name to fail")
	}
}

func TestBindingsOnlyReflectsOwnFrame(t *testing.T) {
	parent := New()
	parent.Define("outer", 1.0)
	child := NewChild(parent)
	child.Define("inner", 2.0)

	bindings := child.Bindings(func(v interface{}) string { return "x" })
	if _, ok := bindings["outer"]; ok {
		t.Errorf("child's own Bindings should not include parent frame's names")
	}
	if _, ok := bindings["inner"]; !ok {
		t.Errorf("expected 'inner' in child's own Bindings")
	}
}
