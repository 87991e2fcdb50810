// Package carousel implements the slide carousel state machine.
//
// # Overview
//
// A Controller owns the current slide index and keeps three projections in
// step with it: the track offset, the indicator dots and the thumbnail
// strip. Inputs arrive as Event values (clicks, drags, keys, visibility and
// pointer changes) and are routed by Dispatch to the public methods, so the
// state machine can be exercised without any terminal attached.
//
// # Autoplay
//
// Autoplay advances the carousel on a repeating Timer obtained from a
// Scheduler. The controller holds at most one timer handle; every start path
// checks it first, and ticks that were in flight when their handle was
// cancelled are dropped:
//
//	pointer enter ──> PauseAutoPlay ──> handle = nil
//	pointer leave ──> ResumeAutoPlay ──> handle == nil && enabled ? start : no-op
//
// TickerScheduler is the production implementation. ManualScheduler moves
// only when Advance is called and is meant for tests.
//
// # Notifications
//
// Every render produces a Change delivered to subscribed listeners after the
// controller lock is released. The UI uses it to feed the progress bar and to
// redraw after autoplay ticks.
package carousel
