// Package element maps template tag names to native view classes.
//
// A Registry is built once at application startup, filled with the
// built-in elements (RegisterBuiltins) and any custom ones, and then handed
// to the template and tree-building layers, which only read from it.
//
// # Name Variants
//
// Each registered name is stored under three keys that share one entry:
//
//	ScrollView   exact
//	scrollview   lowercase
//	scroll-view  kebab
//
// Lookups try the exact string and then its lowercase form. The kebab form
// is never derived on the query side; "scroll-view" resolves only because
// the key was inserted at registration.
//
// # Lazy Resolution
//
// The registry stores a Resolver rather than a class, so view classes are
// only materialized for elements a template actually uses:
//
//	reg := element.NewRegistry(element.WithLogger(logger))
//	if err := element.RegisterBuiltins(reg); err != nil {
//	    return err
//	}
//	err := reg.Register("Card", func() (*view.Class, error) {
//	    return view.StackLayout, nil
//	}, nil)
//
//	cls, err := reg.ViewClass("card")
//
// # Metadata
//
// Meta carries attachment policy for the tree builder. SkipAddToDom keeps an
// element out of the visual tree; InsertChild and RemoveChild override how
// children are attached under a parent of that element type.
package element
