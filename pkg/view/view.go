package view

import (
	"errors"
	"sort"
	"strings"
)

// ErrLeafView is returned when a child is inserted under a view that cannot
// hold children.
var ErrLeafView = errors.New("view: cannot add child to leaf view")

// Kind describes how a view holds children.
type Kind uint8

const (
	KindLeaf    Kind = iota // Label, Button, ...
	KindContent             // ContentView, ScrollView, Page, Border
	KindLayout              // StackLayout, GridLayout, ...
	KindProxy               // ProxyViewContainer
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindContent:
		return "content"
	case KindLayout:
		return "layout"
	case KindProxy:
		return "proxy"
	default:
		return "unknown"
	}
}

// Class is a native view type.
type Class struct {
	Name string
	Kind Kind
}

// New instantiates a view of this class.
func (c *Class) New() *View {
	return &View{
		class:      c,
		CSSClasses: make(map[string]bool),
		Attrs:      make(map[string]string),
		Style:      make(map[string]string),
	}
}

// View is a node in the native view tree.
type View struct {
	class    *Class
	parent   *View
	children []*View

	// NodeName is the tag name the view was created from.
	NodeName string

	// TemplateParent is the logical parent in the template, which differs
	// from Parent for views that are never attached to the visual tree.
	TemplateParent *View

	CSSClasses map[string]bool
	Attrs      map[string]string
	Style      map[string]string
}

// Class returns the view's class.
func (v *View) Class() *Class {
	return v.class
}

// Parent returns the visual parent, or nil when detached.
func (v *View) Parent() *View {
	return v.parent
}

// Children returns the visual children in order.
func (v *View) Children() []*View {
	return v.children
}

// IndexOf returns the child's position, or -1.
func (v *View) IndexOf(child *View) int {
	for i, c := range v.children {
		if c == child {
			return i
		}
	}
	return -1
}

// InsertChild attaches child at index. A negative or out of range index
// appends. Content views replace their current child. The child is
// detached from any previous parent first.
func (v *View) InsertChild(child *View, index int) error {
	if v.class.Kind == KindLeaf {
		return ErrLeafView
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}

	if v.class.Kind == KindContent {
		for _, old := range v.children {
			old.parent = nil
		}
		v.children = []*View{child}
		child.parent = v
		return nil
	}

	if index < 0 || index >= len(v.children) {
		v.children = append(v.children, child)
	} else {
		v.children = append(v.children, nil)
		copy(v.children[index+1:], v.children[index:])
		v.children[index] = child
	}
	child.parent = v
	return nil
}

// RemoveChild detaches child. It reports whether child was attached here.
func (v *View) RemoveChild(child *View) bool {
	i := v.IndexOf(child)
	if i < 0 {
		return false
	}
	v.children = append(v.children[:i], v.children[i+1:]...)
	child.parent = nil
	return true
}

// ClassList returns the set CSS classes in sorted order.
func (v *View) ClassList() []string {
	out := make([]string, 0, len(v.CSSClasses))
	for name, on := range v.CSSClasses {
		if on {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// String renders the subtree for debugging, e.g. "StackLayout(Label,Button)".
func (v *View) String() string {
	var b strings.Builder
	v.writeTo(&b)
	return b.String()
}

func (v *View) writeTo(b *strings.Builder) {
	b.WriteString(v.class.Name)
	if len(v.children) == 0 {
		return
	}
	b.WriteByte('(')
	for i, c := range v.children {
		if i > 0 {
			b.WriteByte(',')
		}
		c.writeTo(b)
	}
	b.WriteByte(')')
}
