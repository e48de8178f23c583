// Package viewtree builds native view trees from element names, honoring
// the attachment policy the element registry records for each element.
package viewtree

import (
	"fmt"
	"log/slog"

	"github.com/nsgo-dev/nsgo/pkg/animations"
	"github.com/nsgo-dev/nsgo/pkg/element"
	"github.com/nsgo-dev/nsgo/pkg/view"
)

// Builder creates views through a registry and attaches them. It
// implements animations.Renderer.
type Builder struct {
	registry *element.Registry
	logger   *slog.Logger
}

// NewBuilder creates a Builder. A nil logger means slog.Default().
func NewBuilder(registry *element.Registry, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{registry: registry, logger: logger}
}

// CreateElement instantiates the view class registered for name.
func (b *Builder) CreateElement(name string) (*view.View, error) {
	cls, err := b.registry.ViewClass(name)
	if err != nil {
		return nil, err
	}
	v := cls.New()
	v.NodeName = name
	return v, nil
}

// AppendChild attaches child as the last child of parent.
func (b *Builder) AppendChild(parent, child *view.View) error {
	return b.insert(parent, child, -1)
}

// InsertBefore attaches child before ref. A nil or foreign ref appends.
func (b *Builder) InsertBefore(parent, child, ref *view.View) error {
	index := -1
	if ref != nil {
		index = parent.IndexOf(ref)
	}
	return b.insert(parent, child, index)
}

func (b *Builder) insert(parent, child *view.View, index int) error {
	child.TemplateParent = parent

	if b.registry.ViewMeta(child.NodeName).SkipAddToDom {
		b.logger.Debug("skipping visual attach", "parent", parent.NodeName, "child", child.NodeName)
		return nil
	}

	if hook := b.registry.ViewMeta(parent.NodeName).InsertChild; hook != nil {
		hook(parent, child, index)
		return nil
	}

	if err := parent.InsertChild(child, index); err != nil {
		return fmt.Errorf("viewtree: insert %s into %s: %w", child.NodeName, parent.NodeName, err)
	}
	return nil
}

// RemoveChild detaches child from parent.
func (b *Builder) RemoveChild(parent, child *view.View) error {
	defer func() { child.TemplateParent = nil }()

	if b.registry.ViewMeta(child.NodeName).SkipAddToDom {
		return nil
	}

	if hook := b.registry.ViewMeta(parent.NodeName).RemoveChild; hook != nil {
		hook(parent, child)
		return nil
	}

	if !parent.RemoveChild(child) {
		b.logger.Debug("remove of unattached child", "parent", parent.NodeName, "child", child.NodeName)
	}
	return nil
}

// Factory hands out Builders over one registry. It implements
// animations.RendererFactory.
type Factory struct {
	registry *element.Registry
	logger   *slog.Logger
}

// NewFactory creates a Factory.
func NewFactory(registry *element.Registry, logger *slog.Logger) *Factory {
	return &Factory{registry: registry, logger: logger}
}

// CreateRenderer returns a new Builder.
func (f *Factory) CreateRenderer() animations.Renderer {
	return NewBuilder(f.registry, f.logger)
}
