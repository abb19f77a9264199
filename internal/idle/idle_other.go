//go:build !linux && !darwin && !windows

package idle

// New returns a no-op Inhibitor; this platform has no wired idle-reset
// mechanism.
func New() Inhibitor {
	return Noop{}
}
