package carousel

// StartAutoPlay starts the repeating advance timer when autoplay is enabled
// and no timer is running. Calling it while running does nothing.
func (c *Controller) StartAutoPlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startAutoPlayLocked()
}

// PauseAutoPlay cancels the running timer, if any.
func (c *Controller) PauseAutoPlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pauseAutoPlayLocked()
}

// ResumeAutoPlay restarts the timer only if autoplay is still enabled.
func (c *Controller) ResumeAutoPlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.autoPlayEnabled && c.handle == nil {
		c.startAutoPlayLocked()
	}
}

// ToggleAutoPlay flips the autoplay flag and starts or pauses accordingly.
func (c *Controller) ToggleAutoPlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	c.autoPlayEnabled = !c.autoPlayEnabled
	if c.autoPlayEnabled {
		c.startAutoPlayLocked()
	} else {
		c.pauseAutoPlayLocked()
	}
}

// AutoPlaying reports whether a timer is currently running.
func (c *Controller) AutoPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle != nil
}

// AutoPlayEnabled reports the user-facing autoplay flag.
func (c *Controller) AutoPlayEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoPlayEnabled
}

// startAutoPlayLocked is the only place a timer is created. The handle
// check keeps at most one timer alive.
func (c *Controller) startAutoPlayLocked() {
	if c.destroyed || !c.autoPlayEnabled || c.handle != nil {
		return
	}
	h := &autoPlayHandle{}
	h.timer = c.scheduler.Every(c.interval, func() { c.tick(h) })
	c.handle = h
	c.syncAutoPlayFrameLocked()
}

func (c *Controller) pauseAutoPlayLocked() {
	if c.handle != nil {
		c.handle.timer.Stop()
		c.handle = nil
	}
	c.syncAutoPlayFrameLocked()
}

// tick runs on the scheduler. Ticks from a cancelled handle that were
// already in flight are dropped.
func (c *Controller) tick(h *autoPlayHandle) {
	c.mu.Lock()
	if c.destroyed || c.handle != h {
		c.mu.Unlock()
		return
	}
	c.current = (c.current + 1) % c.total
	change, listeners := c.renderLocked(DirectionNext)
	c.mu.Unlock()

	notify(listeners, change)
}
