package normalize

import (
	"testing"

	"github.com/gaurav-prasanna/tgmarkup/core"
	"github.com/google/go-cmp/cmp"
)

func texts(nodes []core.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if s, ok := n.(core.Text); ok {
			out = append(out, string(s))
		}
	}
	return out
}

func TestChildren_Flattens(t *testing.T) {
	nested := Children([]any{"a", []any{"b", []any{"c"}}, "d"})
	flat := Children([]any{"a", "b", "c", "d"})

	if diff := cmp.Diff(flat, nested); diff != "" {
		t.Errorf("nested != flat (-flat +nested):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, texts(nested)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestChildren_DropsBooleansAndNil(t *testing.T) {
	got := Children([]any{true, "x", false, nil})
	if diff := cmp.Diff([]core.Node{core.Text("x")}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestChildren_Empty(t *testing.T) {
	for _, in := range []any{nil, []any{}, []any{nil, []any{}}, false} {
		if got := Children(in); len(got) != 0 {
			t.Errorf("Children(%#v) = %v, want empty", in, got)
		}
	}
}

func TestChildren_Scalars(t *testing.T) {
	got := Children([]any{"s", 12, uint64(3), -1.25, int8(-4)})
	want := []string{"s", "12", "3", "-1.25", "-4"}
	if diff := cmp.Diff(want, texts(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestChildren_PassesThroughSpansAndNodes(t *testing.T) {
	span := core.Plain("bold").Wrap(core.Entity{Type: core.EntityBold})
	btn := &core.Button{Text: "ok"}
	row := &core.Row{Buttons: []*core.Button{btn}}
	kb := &core.Keyboard{Inline: true}
	el := core.E(core.KindItalic, nil, "x")

	got := Children([]any{span, btn, row, kb, el})

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if s, ok := got[0].(core.Span); !ok || s.String() != "bold" || len(s.Entities()) != 1 {
		t.Errorf("got[0] = %#v, want the span unchanged", got[0])
	}
	if got[1] != core.Node(btn) || got[2] != core.Node(row) || got[3] != core.Node(kb) || got[4] != core.Node(el) {
		t.Error("structured nodes were not passed through by identity")
	}
}

func TestChildren_TypedSlices(t *testing.T) {
	got := Children([]string{"a", "b"})
	if diff := cmp.Diff([]string{"a", "b"}, texts(got)); diff != "" {
		t.Errorf("[]string mismatch (-want +got):\n%s", diff)
	}

	els := []*core.Element{core.E(core.KindBold, nil), nil, core.E(core.KindBold, nil)}
	if got := Children(els); len(got) != 2 {
		t.Errorf("[]*core.Element len = %d, want 2 (nil dropped)", len(got))
	}

	arr := [2]any{1, [1]int{2}}
	if diff := cmp.Diff([]string{"1", "2"}, texts(Children(arr))); diff != "" {
		t.Errorf("array mismatch (-want +got):\n%s", diff)
	}
}

func TestChildren_DropsUnknown(t *testing.T) {
	type custom struct{ X int }
	var nilBtn *core.Button
	got := Children([]any{custom{1}, map[string]any{"kind": "b"}, struct{}{}, nilBtn, func() {}})
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
