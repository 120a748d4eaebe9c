package thecics

import (
	"time"
)

type Comment struct {
	ID       int    `json:"id"`
	ThesisID int    `json:"thesisId"`
	UserID   int    `json:"userId"`
	Body     string `json:"body"`

	// Hidden comments stay in the store but are only served to admins.
	Hidden bool `json:"hidden"`

	CreatedAt time.Time `json:"createdAt"`
}

type CommentStore interface {
	Get(int) (*Comment, error)
	ByThesis(thesisID int) ([]Comment, error)
	Insert(*Comment) error
	Update(*Comment) error
	Delete(int) error
}
