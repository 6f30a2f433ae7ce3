package lander

// InjectPress queues a key press. The event is applied to the player body on
// the next Update call.
func (e *Engine) InjectPress(k Key) {
	e.injectQueue = append(e.injectQueue, KeyEvent{Key: k, Pressed: true})
}

// InjectRelease queues a key release.
func (e *Engine) InjectRelease(k Key) {
	e.injectQueue = append(e.injectQueue, KeyEvent{Key: k, Pressed: false})
}

// InjectTap is a convenience that queues a press followed by a release of
// the same key. Consumes two frames.
func (e *Engine) InjectTap(k Key) {
	e.InjectPress(k)
	e.InjectRelease(k)
}

// HandleKey applies ev to the player body immediately.
func (e *Engine) HandleKey(ev KeyEvent) {
	body, _ := e.Player()
	e.controls.Handle(body, ev)
}

// Pending returns the number of queued key events.
func (e *Engine) Pending() int {
	return len(e.injectQueue)
}

// processInjected pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (e *Engine) processInjected() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	ev := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	e.HandleKey(ev)
	return true
}
