package element

import "github.com/nsgo-dev/nsgo/pkg/view"

// builtin describes one default element.
type builtin struct {
	name  string
	class *view.Class
	meta  *Meta
}

// builtins lists the default native elements in registration order.
// ActionBar elements are registered by the action bar support code, not here.
var builtins = []builtin{
	{name: "AbsoluteLayout", class: view.AbsoluteLayout},
	{name: "ActivityIndicator", class: view.ActivityIndicator},
	{name: "Border", class: view.Border},
	{name: "Button", class: view.Button},
	{name: "ContentView", class: view.ContentView},
	{name: "DatePicker", class: view.DatePicker},
	{name: "DockLayout", class: view.DockLayout},
	{name: "GridLayout", class: view.GridLayout},
	{name: "HtmlView", class: view.HtmlView},
	{name: "Image", class: view.Image},
	// HTML parsers rewrite <Image> to <img>.
	{name: "img", class: view.Image},
	{name: "Label", class: view.Label},
	{name: "ListPicker", class: view.ListPicker},
	{name: "ListView", class: view.ListView},
	{name: "Page", class: view.Page},
	{name: "Placeholder", class: view.Placeholder},
	{name: "Progress", class: view.Progress},
	{name: "ProxyViewContainer", class: view.ProxyViewContainer},
	{name: "Repeater", class: view.Repeater},
	{name: "ScrollView", class: view.ScrollView},
	{name: "SearchBar", class: view.SearchBar},
	{name: "SegmentedBar", class: view.SegmentedBar},
	{name: "SegmentedBarItem", class: view.SegmentedBarItem},
	{name: "Slider", class: view.Slider},
	{name: "StackLayout", class: view.StackLayout},
	{name: "FlexboxLayout", class: view.FlexboxLayout},
	{name: "Switch", class: view.Switch},
	{name: "TabView", class: view.TabView},
	{name: "TextField", class: view.TextField},
	{name: "TextView", class: view.TextView},
	{name: "TimePicker", class: view.TimePicker},
	{name: "WebView", class: view.WebView},
	{name: "WrapLayout", class: view.WrapLayout},
	{name: "FormattedString", class: view.FormattedString},
	{name: "Span", class: view.Span},

	{name: "DetachedContainer", class: view.ProxyViewContainer, meta: &Meta{SkipAddToDom: true}},
	{name: "DetachedText", class: view.Placeholder, meta: &Meta{SkipAddToDom: true}},
	{name: "Comment", class: view.Placeholder, meta: &Meta{SkipAddToDom: false}},
}

// RegisterBuiltins registers the default native elements on r. It fails if
// any of their names is already registered.
func RegisterBuiltins(r *Registry) error {
	for _, b := range builtins {
		cls := b.class
		var meta *Meta
		if b.meta != nil {
			m := *b.meta
			meta = &m
		}
		if err := r.Register(b.name, func() (*view.Class, error) { return cls, nil }, meta); err != nil {
			return err
		}
	}
	return nil
}
