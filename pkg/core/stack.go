package core

import "time"

// StackEntry is one tool or product on the stack page.
type StackEntry struct {
	ID          string    `json:"id" yaml:"-"`
	Slug        string    `json:"slug" yaml:"slug"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description"`
	URL         string    `json:"url,omitempty" yaml:"url"`
	Image       string    `json:"image,omitempty" yaml:"image"`
	Tags        []string  `json:"tags,omitempty" yaml:"tags"`
	CreatedAt   time.Time `json:"created_at" yaml:"-"`
}
