// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"sync"

	"github.com/llehouerou/trackersearch/internal/errmsg"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	Category   string  // freedesktop category, e.g. "transfer.error"
	Transient  bool    // not kept in the notification history
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// noopNotifier is used when notifications are unavailable.
type noopNotifier struct{}

func (noopNotifier) Notify(_ Notification) (uint32, error) { return 0, nil }

func (noopNotifier) Close(_ uint32) error { return nil }

// Reporter turns failures into desktop notifications. Each report replaces
// the previous one so repeated failures do not pile up.
type Reporter struct {
	notifier Notifier

	mu     sync.Mutex
	lastID uint32
}

// NewReporter creates a Reporter sending through n.
func NewReporter(n Notifier) *Reporter {
	return &Reporter{notifier: n}
}

// Report notifies the user that op failed on subject. A nil err is ignored.
func (r *Reporter) Report(op errmsg.Op, subject string, err error) error {
	if err == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, notifyErr := r.notifier.Notify(Notification{
		Title:      "Tracker Search",
		Body:       errmsg.FormatWith(op, subject, err),
		Icon:       "dialog-error",
		Timeout:    -1,
		ReplacesID: r.lastID,
		Urgency:    UrgencyNormal,
		Transient:  true,
	})
	if notifyErr != nil {
		return notifyErr
	}
	r.lastID = id
	return nil
}
