// Package render groups the output adapters of drift.
//
//   - [slotgraph]: the combination slot tree as DOT or SVG
//   - [window]: a live ebiten window driving an [app.App]
//
// The HTTP server lives in pkg/server and the PNG encoders in pkg/capture.
//
// [slotgraph]: github.com/matzehuels/drift/pkg/render/slotgraph
// [window]: github.com/matzehuels/drift/pkg/render/window
// [app.App]: github.com/matzehuels/drift/pkg/app#App
package render
