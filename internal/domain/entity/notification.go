package entity

import "fmt"

// DefaultNotificationIcon is the icon shown with omnibox notifications.
const DefaultNotificationIcon = "./icons/port_128.png"

// Notification is a user-visible message shown through the host.
type Notification struct {
	Title   string
	Message string
	IconURL string
}

// NewInvalidPortNotification echoes the offending input back to the user.
func NewInvalidPortNotification(text, iconURL string) Notification {
	if iconURL == "" {
		iconURL = DefaultNotificationIcon
	}
	return Notification{
		Title:   "Invalid Port !!!",
		Message: fmt.Sprintf("'%s' is not a valid port", text),
		IconURL: iconURL,
	}
}
