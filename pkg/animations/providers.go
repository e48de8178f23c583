package animations

import (
	"fmt"

	"github.com/nsgo-dev/nsgo/pkg/inject"
)

// Tokens for the animation providers and the host values they depend on.
const (
	TokenAnimationDriver          inject.Token = "AnimationDriver"
	TokenAnimationStyleNormalizer inject.Token = "AnimationStyleNormalizer"
	TokenAnimationEngine          inject.Token = "AnimationEngine"
	TokenRendererFactory          inject.Token = "RendererFactory"

	// Supplied by the host.
	TokenNativeRendererFactory inject.Token = "NativeRendererFactory"
	TokenZone                  inject.Token = "Zone"
)

// Providers returns the provider list that installs native animation
// support. TokenRendererFactory resolves to an *AnimationRendererFactory.
func Providers() []inject.Provider {
	return []inject.Provider{
		{
			Token:   TokenAnimationDriver,
			Factory: func(...any) (any, error) { return NewNativeDriver(), nil },
		},
		{
			Token:   TokenAnimationStyleNormalizer,
			Factory: func(...any) (any, error) { return NewWebStyleNormalizer(), nil },
		},
		{
			Token: TokenAnimationEngine,
			Deps:  []inject.Token{TokenAnimationDriver, TokenAnimationStyleNormalizer},
			Factory: func(deps ...any) (any, error) {
				return NewEngine(deps[0].(Driver), deps[1].(StyleNormalizer)), nil
			},
		},
		{
			Token: TokenRendererFactory,
			Deps:  []inject.Token{TokenNativeRendererFactory, TokenAnimationEngine, TokenZone},
			Factory: func(deps ...any) (any, error) {
				native, ok := deps[0].(RendererFactory)
				if !ok {
					return nil, fmt.Errorf("%s is %T, not a RendererFactory", TokenNativeRendererFactory, deps[0])
				}
				zone, ok := deps[2].(Zone)
				if !ok {
					return nil, fmt.Errorf("%s is %T, not a Zone", TokenZone, deps[2])
				}
				return NewAnimationRendererFactory(native, deps[1].(*Engine), zone), nil
			},
		},
	}
}
