package view

// Built-in native view classes.
var (
	AbsoluteLayout     = &Class{Name: "AbsoluteLayout", Kind: KindLayout}
	ActivityIndicator  = &Class{Name: "ActivityIndicator", Kind: KindLeaf}
	Border             = &Class{Name: "Border", Kind: KindContent}
	Button             = &Class{Name: "Button", Kind: KindLeaf}
	ContentView        = &Class{Name: "ContentView", Kind: KindContent}
	DatePicker         = &Class{Name: "DatePicker", Kind: KindLeaf}
	DockLayout         = &Class{Name: "DockLayout", Kind: KindLayout}
	FlexboxLayout      = &Class{Name: "FlexboxLayout", Kind: KindLayout}
	FormattedString    = &Class{Name: "FormattedString", Kind: KindLayout}
	GridLayout         = &Class{Name: "GridLayout", Kind: KindLayout}
	HtmlView           = &Class{Name: "HtmlView", Kind: KindLeaf}
	Image              = &Class{Name: "Image", Kind: KindLeaf}
	Label              = &Class{Name: "Label", Kind: KindLeaf}
	ListPicker         = &Class{Name: "ListPicker", Kind: KindLeaf}
	ListView           = &Class{Name: "ListView", Kind: KindLeaf}
	Page               = &Class{Name: "Page", Kind: KindContent}
	Placeholder        = &Class{Name: "Placeholder", Kind: KindLeaf}
	Progress           = &Class{Name: "Progress", Kind: KindLeaf}
	ProxyViewContainer = &Class{Name: "ProxyViewContainer", Kind: KindProxy}
	Repeater           = &Class{Name: "Repeater", Kind: KindLeaf}
	ScrollView         = &Class{Name: "ScrollView", Kind: KindContent}
	SearchBar          = &Class{Name: "SearchBar", Kind: KindLeaf}
	SegmentedBar       = &Class{Name: "SegmentedBar", Kind: KindLayout}
	SegmentedBarItem   = &Class{Name: "SegmentedBarItem", Kind: KindLeaf}
	Slider             = &Class{Name: "Slider", Kind: KindLeaf}
	Span               = &Class{Name: "Span", Kind: KindLeaf}
	StackLayout        = &Class{Name: "StackLayout", Kind: KindLayout}
	Switch             = &Class{Name: "Switch", Kind: KindLeaf}
	TabView            = &Class{Name: "TabView", Kind: KindLayout}
	TextField          = &Class{Name: "TextField", Kind: KindLeaf}
	TextView           = &Class{Name: "TextView", Kind: KindLeaf}
	TimePicker         = &Class{Name: "TimePicker", Kind: KindLeaf}
	WebView            = &Class{Name: "WebView", Kind: KindLeaf}
	WrapLayout         = &Class{Name: "WrapLayout", Kind: KindLayout}
)
