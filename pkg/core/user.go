package core

import "time"

// User is a stored account. PasswordHash never leaves the store and auth layers.
type User struct {
	ID           string
	Name         string
	Image        string
	IsAdmin      bool
	PasswordHash string
	CreatedAt    time.Time
}

// Session projects the user into the read-only session the view receives.
func (u *User) Session() *UserSession {
	if u == nil {
		return nil
	}
	return &UserSession{
		ID:      u.ID,
		Name:    u.Name,
		Image:   u.Image,
		IsAdmin: u.IsAdmin,
	}
}

// UserSession is the authenticated viewer as seen by the UI.
// A nil *UserSession means nobody is signed in.
type UserSession struct {
	ID      string
	Name    string
	Image   string
	IsAdmin bool
}

// Initial returns the first letter of the name, used as an avatar fallback.
func (s *UserSession) Initial() string {
	if s == nil {
		return ""
	}
	for _, r := range s.Name {
		return string(r)
	}
	return ""
}
