package viewtree

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/nsgo-dev/nsgo/pkg/element"
	"github.com/nsgo-dev/nsgo/pkg/view"
)

func newTestBuilder(t *testing.T) (*Builder, *element.Registry) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := element.NewRegistry(element.WithLogger(logger))
	if err := element.RegisterBuiltins(reg); err != nil {
		t.Fatal(err)
	}
	return NewBuilder(reg, logger), reg
}

func mustCreate(t *testing.T, b *Builder, name string) *view.View {
	t.Helper()
	v, err := b.CreateElement(name)
	if err != nil {
		t.Fatalf("CreateElement(%q): %v", name, err)
	}
	return v
}

func TestCreateElement(t *testing.T) {
	b, _ := newTestBuilder(t)

	v := mustCreate(t, b, "stack-layout")
	if v.Class() != view.StackLayout {
		t.Errorf("class = %s, want StackLayout", v.Class().Name)
	}
	if v.NodeName != "stack-layout" {
		t.Errorf("NodeName = %q", v.NodeName)
	}

	_, err := b.CreateElement("NoSuchThing")
	if !errors.Is(err, element.ErrUnknownElement) {
		t.Errorf("err = %v, want ErrUnknownElement", err)
	}
}

func TestAppendAndInsertBefore(t *testing.T) {
	b, _ := newTestBuilder(t)

	stack := mustCreate(t, b, "StackLayout")
	label := mustCreate(t, b, "Label")
	button := mustCreate(t, b, "Button")
	img := mustCreate(t, b, "img")

	_ = b.AppendChild(stack, label)
	_ = b.AppendChild(stack, img)
	_ = b.InsertBefore(stack, button, img)

	if got := stack.String(); got != "StackLayout(Label,Button,Image)" {
		t.Errorf("tree = %s", got)
	}
	if button.TemplateParent != stack {
		t.Error("TemplateParent not set")
	}
}

func TestSkipAddToDom(t *testing.T) {
	b, _ := newTestBuilder(t)

	stack := mustCreate(t, b, "StackLayout")
	detached := mustCreate(t, b, "DetachedText")

	if err := b.AppendChild(stack, detached); err != nil {
		t.Fatal(err)
	}
	if len(stack.Children()) != 0 {
		t.Error("skipped element attached to visual tree")
	}
	if detached.TemplateParent != stack {
		t.Error("skipped element should still record its template parent")
	}

	if err := b.RemoveChild(stack, detached); err != nil {
		t.Fatal(err)
	}
	if detached.TemplateParent != nil {
		t.Error("TemplateParent not cleared on remove")
	}
}

func TestCommentIsAttached(t *testing.T) {
	b, _ := newTestBuilder(t)

	stack := mustCreate(t, b, "StackLayout")
	comment := mustCreate(t, b, "Comment")
	_ = b.AppendChild(stack, comment)

	if len(stack.Children()) != 1 {
		t.Error("Comment placeholder should be attached")
	}
}

func TestInsertAndRemoveHooks(t *testing.T) {
	b, reg := newTestBuilder(t)

	var inserted, removed []*view.View
	err := reg.Register("Tabs", func() (*view.Class, error) { return view.TabView, nil }, &element.Meta{
		InsertChild: func(parent, child *view.View, index int) {
			inserted = append(inserted, child)
			_ = parent.InsertChild(child, 0)
		},
		RemoveChild: func(parent, child *view.View) {
			removed = append(removed, child)
			parent.RemoveChild(child)
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	tabs := mustCreate(t, b, "tabs")
	first := mustCreate(t, b, "Label")
	second := mustCreate(t, b, "Button")

	_ = b.AppendChild(tabs, first)
	_ = b.AppendChild(tabs, second)

	if len(inserted) != 2 {
		t.Fatalf("insert hook ran %d times, want 2", len(inserted))
	}
	if got := tabs.String(); got != "TabView(Button,Label)" {
		t.Errorf("tree = %s (hook inserts at 0)", got)
	}

	_ = b.RemoveChild(tabs, first)
	if len(removed) != 1 || removed[0] != first {
		t.Error("remove hook not used")
	}
	if first.TemplateParent != nil {
		t.Error("TemplateParent not cleared")
	}
}

func TestInsertUnderLeaf(t *testing.T) {
	b, _ := newTestBuilder(t)

	label := mustCreate(t, b, "Label")
	err := b.AppendChild(label, mustCreate(t, b, "Button"))
	if !errors.Is(err, view.ErrLeafView) {
		t.Errorf("err = %v, want ErrLeafView", err)
	}
}

func TestFactory(t *testing.T) {
	_, reg := newTestBuilder(t)
	f := NewFactory(reg, nil)

	r := f.CreateRenderer()
	if _, err := r.CreateElement("Page"); err != nil {
		t.Fatal(err)
	}
}
