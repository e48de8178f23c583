// Package animations wires native-aware animation support into the renderer.
//
// The package supplies four pieces, each bound to a Token in Providers:
//
//   - TokenAnimationDriver: NativeDriver, which plays keyframes on views
//   - TokenAnimationStyleNormalizer: WebStyleNormalizer
//   - TokenAnimationEngine: Engine, built from the driver and normalizer
//   - TokenRendererFactory: AnimationRendererFactory, wrapping the host's
//     native renderer factory (TokenNativeRendererFactory) and Zone (TokenZone)
//
// The host supplies TokenNativeRendererFactory and TokenZone and resolves
// TokenRendererFactory through an inject.Injector.
//
// Animation timing and easing belong to the native toolkit; players here
// only apply the final keyframe when they finish.
package animations
