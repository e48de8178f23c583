// Package inject resolves a name-keyed provider list into instances.
//
// A Provider names a Token and says how to build its value: a fixed Value,
// or a Factory called with the resolved values of its Deps in order.
// Instances are built on first Get and then reused.
//
//	inj, err := inject.New(animations.Providers(), hostProviders)
//	factory, err := inject.Get[animations.RendererFactory](inj, animations.TokenRendererFactory)
package inject

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/nsgo-dev/nsgo/internal/errors"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrNoProvider         = errors.New("E210")
	ErrCircularDependency = errors.New("E211")
	ErrFactory            = errors.New("E212")
)

// Token identifies a provided value.
type Token string

// Provider binds a token to a value or a factory.
type Provider struct {
	Token Token

	// Value is returned as-is when Factory is nil.
	Value any

	// Factory builds the value from the resolved Deps.
	Factory func(deps ...any) (any, error)

	// Deps are resolved in order and passed to Factory.
	Deps []Token
}

// ValueProvider returns a provider for a fixed value.
func ValueProvider(tok Token, v any) Provider {
	return Provider{Token: tok, Value: v}
}

// Injector resolves tokens against a provider list. It is not safe for
// concurrent use.
type Injector struct {
	providers map[Token]Provider
	instances map[Token]any
	resolving []Token
}

// New builds an injector from provider lists. For a token provided more
// than once the last provider wins, so host lists can override defaults.
func New(lists ...[]Provider) (*Injector, error) {
	inj := &Injector{
		providers: make(map[Token]Provider),
		instances: make(map[Token]any),
	}
	for _, list := range lists {
		for _, p := range list {
			if p.Token == "" {
				return nil, errors.Newf(errors.CategoryInject, "provider without token")
			}
			inj.providers[p.Token] = p
		}
	}
	return inj, nil
}

// Has reports whether tok has a provider.
func (inj *Injector) Has(tok Token) bool {
	_, ok := inj.providers[tok]
	return ok
}

// Get returns the instance for tok, building it and its dependencies on
// first use.
func (inj *Injector) Get(tok Token) (any, error) {
	if v, ok := inj.instances[tok]; ok {
		return v, nil
	}

	p, ok := inj.providers[tok]
	if !ok {
		return nil, errors.New("E210").
			WithSubject(string(tok)).
			WithDetail(fmt.Sprintf("No provider for %s%s.", tok, inj.path()))
	}

	for _, r := range inj.resolving {
		if r == tok {
			return nil, errors.New("E211").
				WithSubject(string(tok)).
				WithDetail(fmt.Sprintf("Cannot instantiate cyclic dependency: %s -> %s.", inj.chain(), tok))
		}
	}

	if p.Factory == nil {
		inj.instances[tok] = p.Value
		return p.Value, nil
	}

	inj.resolving = append(inj.resolving, tok)
	defer func() { inj.resolving = inj.resolving[:len(inj.resolving)-1] }()

	deps := make([]any, len(p.Deps))
	for i, d := range p.Deps {
		v, err := inj.Get(d)
		if err != nil {
			return nil, err
		}
		deps[i] = v
	}

	v, err := p.Factory(deps...)
	if err != nil {
		return nil, errors.New("E212").
			WithSubject(string(tok)).
			WithDetail(fmt.Sprintf("Provider for %s failed.", tok)).
			Wrap(err)
	}
	inj.instances[tok] = v
	return v, nil
}

// Get resolves tok and asserts its type.
func Get[T any](inj *Injector, tok Token) (T, error) {
	var zero T
	v, err := inj.Get(tok)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, errors.New("E212").
			WithSubject(string(tok)).
			WithDetail(fmt.Sprintf("Provider for %s returned %T, want %v.", tok, v, reflect.TypeOf((*T)(nil)).Elem()))
	}
	return t, nil
}

// path describes where the current resolution started, for error messages.
func (inj *Injector) path() string {
	if len(inj.resolving) == 0 {
		return ""
	}
	return " (required by " + inj.chain() + ")"
}

func (inj *Injector) chain() string {
	parts := make([]string, len(inj.resolving))
	for i, t := range inj.resolving {
		parts[i] = string(t)
	}
	return strings.Join(parts, " -> ")
}
