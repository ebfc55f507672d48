package console

import "fmt"

// Install starts intercepting the console's streams. Calls nest: only the
// outermost Install captures the current sinks and replaces them with line
// buffering forwarders, and only the matching outermost Uninstall restores
// them. Installing when output is not a terminal only counts the nesting.
//
// Every Install must be balanced by exactly one Uninstall; Intercept does
// that for you. Unbalanced calls are not detected.
func (c *Console) Install() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.depth++
	if c.depth != 1 {
		return
	}
	if !c.caps.Terminal {
		return
	}

	c.originalOut = c.currentOut
	c.originalErr = c.currentErr
	c.fwdOut = newForwarder(c, c.originalOut)
	c.fwdErr = newForwarder(c, c.originalErr)
	c.currentOut = c.fwdOut
	c.currentErr = c.fwdErr
}

// Uninstall ends one level of interception. The outermost Uninstall drains
// any unterminated partial lines to the real sinks and restores them. A drain
// failure is logged and never prevents the restore.
func (c *Console) Uninstall() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.depth--
	if c.depth != 0 {
		return
	}
	if !c.caps.Terminal || c.fwdOut == nil {
		return
	}

	if err := c.fwdOut.flush(); err != nil {
		c.reportLocked(fmt.Sprintf("draining standard output on uninstall: %v", err))
	}
	if err := c.fwdErr.flush(); err != nil {
		c.reportLocked(fmt.Sprintf("draining standard error on uninstall: %v", err))
	}

	c.currentOut = c.originalOut
	c.currentErr = c.originalErr
	c.fwdOut = nil
	c.fwdErr = nil
}

// Intercept runs fn between Install and Uninstall. Uninstall runs even if fn
// panics.
func (c *Console) Intercept(fn func() error) error {
	c.Install()
	defer c.Uninstall()

	return fn()
}

// Installed reports whether at least one Install is active.
func (c *Console) Installed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.depth > 0
}

// Intercepting reports whether the streams are currently routed through
// forwarders. It is false when output is not a terminal, even while
// installed.
func (c *Console) Intercepting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fwdOut != nil
}
