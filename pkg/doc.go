// Package pkg holds the drift libraries.
//
// # Overview
//
// drift is a deterministic generative-art piece: a seed string and a
// combination number fix a palette, a flow of motion and a tempo, and the
// animation that follows replays identically on every run. The libraries are
// organised bottom-up:
//
//  1. [prng] - seeded pseudo-random stream
//  2. [combination] - mixed-radix codec over a tree of slots
//  3. [palette] and [features] - the slot tree of the piece and feature derivation
//  4. [canvas] and [anim] - pixel buffer and the animation state machine
//  5. [app] - one running session, driven by a render adapter
//
// # Architecture
//
//	seed, combination
//	         ↓
//	    [features] (slot tree decode → palette roles, flow, tempo, labels)
//	         ↓
//	    [anim] (phases, moving elements, kiosk cross-fade) on a [canvas]
//	         ↓
//	    [app] ← window (ebiten) / server (chi) / CLI capture and record
//
// Supporting packages: [config] (TOML settings), [errors] (coded errors),
// [cache] (capture cache with file and redis backends), [capture] (PNG
// snapshots and frame sequences), [observability] (event hooks) and
// [render/slotgraph] (slot tree diagrams).
//
// [prng]: github.com/matzehuels/drift/pkg/prng
// [combination]: github.com/matzehuels/drift/pkg/combination
// [palette]: github.com/matzehuels/drift/pkg/palette
// [features]: github.com/matzehuels/drift/pkg/features
// [canvas]: github.com/matzehuels/drift/pkg/canvas
// [anim]: github.com/matzehuels/drift/pkg/anim
// [app]: github.com/matzehuels/drift/pkg/app
// [config]: github.com/matzehuels/drift/pkg/config
// [errors]: github.com/matzehuels/drift/pkg/errors
// [cache]: github.com/matzehuels/drift/pkg/cache
// [capture]: github.com/matzehuels/drift/pkg/capture
// [observability]: github.com/matzehuels/drift/pkg/observability
// [render/slotgraph]: github.com/matzehuels/drift/pkg/render/slotgraph
package pkg
