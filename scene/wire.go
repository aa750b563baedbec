package scene

import "elbow/connection"

// Wire is a connection placed on the stage under an identifier. It carries
// the refresh flag a commit suspends while its geometry is swapped.
type Wire struct {
	id      string
	conn    *connection.Connection
	refresh bool
}

// NewWire returns a wire wrapping conn. Refresh starts enabled.
func NewWire(id string, conn *connection.Connection) *Wire {
	return &Wire{id: id, conn: conn, refresh: true}
}

// ID returns the wire's identifier.
func (w *Wire) ID() string { return w.id }

// Connection returns the wrapped connection.
func (w *Wire) Connection() *connection.Connection { return w.conn }

// RefreshEnabled reports whether the wire currently repaints on change.
func (w *Wire) RefreshEnabled() bool { return w.refresh }

// SetRefreshEnabled switches repainting on change on or off.
func (w *Wire) SetRefreshEnabled(on bool) { w.refresh = on }
