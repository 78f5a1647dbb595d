package domain

// ErrorMode controls whether a failed calculation is shown to the user.
type ErrorMode string

const (
	// ErrorModeSurface shows an error announcement.
	ErrorModeSurface ErrorMode = "surface"
	// ErrorModeSilent shows nothing, matching the first release of the app.
	ErrorModeSilent ErrorMode = "silent"
)

const (
	ErrorAnnouncementTitle   = "Error"
	ErrorAnnouncementMessage = "Sorry, there was a problem calculating your bedtime."
)

// ParseErrorMode falls back to ErrorModeSurface for unknown values.
func ParseErrorMode(s string) ErrorMode {
	if ErrorMode(s) == ErrorModeSilent {
		return ErrorModeSilent
	}
	return ErrorModeSurface
}

// ErrorAnnouncement returns what the user should see for a failed
// calculation, or nil when the mode is silent.
func (m ErrorMode) ErrorAnnouncement() *Announcement {
	if m == ErrorModeSilent {
		return nil
	}
	return &Announcement{
		Title:   ErrorAnnouncementTitle,
		Message: ErrorAnnouncementMessage,
	}
}
