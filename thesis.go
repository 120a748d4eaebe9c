package thecics

import (
	"time"
)

// ThesisStatus is the lifecycle status of a thesis. Only active theses are
// visible to regular members; drafts await moderation and inactive theses
// have been restricted by an admin.
type ThesisStatus string

const (
	ThesisDraft    ThesisStatus = "draft"
	ThesisActive   ThesisStatus = "active"
	ThesisInactive ThesisStatus = "inactive"
)

type Thesis struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Abstract string `json:"abstract"`

	AuthorID   int    `json:"authorId"`
	AuthorName string `json:"authorName"`
	Year       int    `json:"year"`

	Keywords []string `json:"keywords"`
	PDFURL   string   `json:"pdfUrl"`

	Status ThesisStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Pagination struct {
	Total  uint64 `json:"total"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

type ThesisSearch struct {
	IDs []int  `json:"ids"`
	Q   string `json:"q"`

	Keywords []string       `json:"keywords"`
	Year     int            `json:"year"`
	Statuses []ThesisStatus `json:"statuses"`

	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

type ThesisSearchResults struct {
	IDs        []int
	Pagination Pagination
}

type ThesisStore interface {
	Get(...int) ([]*Thesis, error)
	List() ([]*Thesis, error)
	Upsert(*Thesis) error
	Delete(int) error
}

type ThesisIndex interface {
	Index(*Thesis) error
	Search(ThesisSearch) (ThesisSearchResults, error)
	Delete(int) error
}
