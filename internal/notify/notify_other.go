//go:build !linux

package notify

// New returns a no-op Notifier; desktop notifications need D-Bus.
func New() (Notifier, error) {
	return nop{}, nil
}
