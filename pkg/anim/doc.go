// Package anim advances a drift scene one tick at a time.
//
// A [Machine] owns the moving elements, the frame counter, the flow policy and
// the kiosk cross-fade of the scene it animates. It is driven by an external
// clock calling [Machine.Tick]; nothing inside a tick blocks or runs in the
// background, and the canvas is only written during a tick.
//
// # Phases
//
// A machine starts in [Previewing]. Once it has spawned more than
// MaxLive × PreviewFactor elements it moves to [Steady] and fires the preview
// hook, once per combination. With PauseAfter set, a countdown decremented
// every unpaused tick pauses the machine when it reaches zero; [Machine.Touch]
// resets it and resumes.
//
// # Kiosk
//
// While paused with kiosk mode enabled, every Interval ticks the machine draws
// a new combination, re-derives its feature set and cross-fades the five role
// colours over Fade ticks. The last fade tick lands exactly on the new colours,
// then the new set is committed, the preview phase restarts and the machine
// resumes.
package anim
