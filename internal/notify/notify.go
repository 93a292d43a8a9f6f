// Package notify announces drawn songs as desktop notifications via D-Bus.
package notify

import "github.com/llehouerou/chorus/internal/catalog"

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
}

// hintCategory is the freedesktop category sent with every notification.
const hintCategory = "x-chorus.recommendation"

// Notifier shows and dismisses desktop notifications.
type Notifier interface {
	// Notify shows n and returns its id, or 0 when notifications are
	// unavailable.
	Notify(n Notification) (uint32, error)
	// Close dismisses the notification id; 0 is ignored.
	Close(id uint32) error
}

// nop is used when no notification daemon is reachable.
type nop struct{}

func (nop) Notify(Notification) (uint32, error) { return 0, nil }
func (nop) Close(uint32) error                   { return nil }

// Recommendation describes a drawn song. replaces is the id of the previous
// recommendation notification, so only the latest stays on screen.
func Recommendation(category string, song catalog.Song, replaces uint32) Notification {
	return Notification{
		Title:      song.Name,
		Body:       song.Artist + " · " + category,
		Icon:       "audio-x-generic",
		Timeout:    5000,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}
