// Package view models the native view toolkit that templates render into.
//
// A Class describes a native view type (StackLayout, Label, ...) and knows
// how to instantiate it. A View is one node of the native view tree. Views
// keep their own parent/child links; how a child is attached depends on the
// class Kind:
//
//   - KindLeaf views take no children.
//   - KindContent views hold a single child; inserting replaces it.
//   - KindLayout and KindProxy views keep an ordered child list.
//
// Package view does not know about element names. Mapping tag names to
// classes is the job of package element.
package view
