package core

import "time"

// Author is the public projection of the user who wrote a comment.
type Author struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Comment is a single entry in an entity's comment thread.
type Comment struct {
	ID         string     `json:"id"`
	EntityID   string     `json:"entity_id"`
	EntityType EntityType `json:"entity_type"`
	Text       string     `json:"text"`
	Author     Author     `json:"author"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Key returns the thread this comment belongs to.
func (c *Comment) Key() EntityKey {
	return EntityKey{ID: c.EntityID, Type: c.EntityType}
}

// CanDelete reports whether the session may remove the comment.
// Authors can delete their own comments; admins can delete any.
func (c *Comment) CanDelete(s *UserSession) bool {
	if s == nil {
		return false
	}
	return s.IsAdmin || (s.ID != "" && s.ID == c.Author.ID)
}
