//go:build linux

package shellsearch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

// Service owns a bus name and serves the exported provider until Close.
type Service struct {
	conn    *dbus.Conn
	busName string
	cancel  context.CancelFunc
}

// New connects to the session bus, exports p at objectPath and requests
// busName.
func New(p SearchProvider, busName, objectPath string, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	path := dbus.ObjectPath(objectPath)
	if !path.IsValid() {
		return nil, fmt.Errorf("invalid object path %q", objectPath)
	}

	// Private connection: Close must not tear down the shared one used
	// for notifications.
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	obj := &searchObject{ctx: ctx, provider: p, logger: logger}

	if err := conn.Export(obj, path, Interface); err != nil {
		cancel()
		conn.Close()
		return nil, fmt.Errorf("export %s: %w", Interface, err)
	}
	if err := conn.Export(introspect.NewIntrospectable(introspectNode()), path, introspectableInterface); err != nil {
		cancel()
		conn.Close()
		return nil, fmt.Errorf("export introspection: %w", err)
	}

	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		cancel()
		conn.Close()
		return nil, fmt.Errorf("request name %s: %w", busName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		cancel()
		conn.Close()
		return nil, fmt.Errorf("%s: %w", busName, ErrNameTaken)
	}

	logger.Info("search provider registered", "bus_name", busName, "object_path", objectPath)
	return &Service{conn: conn, busName: busName, cancel: cancel}, nil
}

// Close releases the bus name and the connection. In-flight queries are
// canceled.
func (s *Service) Close() error {
	s.cancel()
	if _, err := s.conn.ReleaseName(s.busName); err != nil {
		s.conn.Close()
		return fmt.Errorf("release name %s: %w", s.busName, err)
	}
	return s.conn.Close()
}
