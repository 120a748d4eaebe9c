package services

import (
	"fmt"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/errors"
)

func errThesisNotFound(id int) error {
	return errors.New(fmt.Sprintf("thesis %d not found", id), errors.NotFound())
}

func errRestricted() error {
	return errors.New("your account is restricted", errors.Forbidden())
}

func errAdminOnly() error {
	return errors.New("admin only", errors.Forbidden())
}

type ThesisService struct {
	store thecics.ThesisStore
	index thecics.ThesisIndex
}

func NewThesisService(store thecics.ThesisStore, index thecics.ThesisIndex) *ThesisService {
	return &ThesisService{
		store: store,
		index: index,
	}
}

// Get returns the thesis for id. Non-active theses are only visible to
// admins and to their own author; for everybody else they do not exist.
func (s *ThesisService) Get(user thecics.User, id int) (thecics.Thesis, error) {
	theses, err := s.store.Get(id)
	if err != nil {
		return thecics.Thesis{}, err
	} else if len(theses) != 1 {
		return thecics.Thesis{}, errThesisNotFound(id)
	}

	thesis := *theses[0]
	if thesis.Status != thecics.ThesisActive && !user.IsAdmin() && thesis.AuthorID != user.ID {
		return thecics.Thesis{}, errThesisNotFound(id)
	}

	return thesis, nil
}

type SearchResults struct {
	Theses     []thecics.Thesis   `json:"theses"`
	Pagination thecics.Pagination `json:"pagination"`
}

func (s *ThesisService) Search(user thecics.User, q string, keywords []string, year int, bookmarked bool, offset, limit int) (SearchResults, error) {
	sp := thecics.ThesisSearch{
		Q:        q,
		Keywords: keywords,
		Year:     year,

		Offset: uint64(offset),
		Limit:  uint64(limit),
	}

	// Members only ever see active theses; admins see everything.
	if !user.IsAdmin() {
		sp.Statuses = []thecics.ThesisStatus{thecics.ThesisActive}
	}

	if bookmarked {
		sp.IDs = user.Bookmarks
		if sp.IDs == nil {
			sp.IDs = []int{}
		}
	}

	if sp.Limit <= 0 {
		sp.Limit = 20
	}

	res, err := s.index.Search(sp)
	if err != nil {
		return SearchResults{}, err
	}

	theses := make([]thecics.Thesis, 0, len(res.IDs))
	pointers, err := s.store.Get(res.IDs...)
	if err != nil {
		return SearchResults{}, err
	}
	for _, thesis := range pointers {
		theses = append(theses, *thesis)
	}

	return SearchResults{
		Theses:     theses,
		Pagination: res.Pagination,
	}, nil
}

// Submit creates a new thesis in draft status; it becomes visible once an
// admin approves it.
func (s *ThesisService) Submit(user thecics.User, thesis thecics.Thesis) (thecics.Thesis, error) {
	if user.Status == thecics.UserRestricted {
		return thecics.Thesis{}, errRestricted()
	}
	if thesis.ID != 0 {
		return thecics.Thesis{}, errors.New("id already set", errors.BadRequest())
	}
	if thesis.Title == "" {
		return thecics.Thesis{}, errors.New("title is required", errors.BadRequest())
	}

	thesis.AuthorID = user.ID
	if thesis.AuthorName == "" {
		thesis.AuthorName = user.Name
	}
	thesis.Status = thecics.ThesisDraft

	if err := s.store.Upsert(&thesis); err != nil {
		return thecics.Thesis{}, err
	}

	if err := s.index.Index(&thesis); err != nil {
		return thecics.Thesis{}, err
	}

	return thesis, nil
}

// Approve moves a thesis to active status. Admin only.
func (s *ThesisService) Approve(user thecics.User, id int) (thecics.Thesis, error) {
	return s.setStatus(user, id, thecics.ThesisActive)
}

// Restrict moves a thesis to inactive status. Admin only.
func (s *ThesisService) Restrict(user thecics.User, id int) (thecics.Thesis, error) {
	return s.setStatus(user, id, thecics.ThesisInactive)
}

func (s *ThesisService) setStatus(user thecics.User, id int, status thecics.ThesisStatus) (thecics.Thesis, error) {
	if !user.IsAdmin() {
		return thecics.Thesis{}, errAdminOnly()
	}

	theses, err := s.store.Get(id)
	if err != nil {
		return thecics.Thesis{}, err
	} else if len(theses) != 1 {
		return thecics.Thesis{}, errThesisNotFound(id)
	}

	thesis := theses[0]
	thesis.Status = status

	if err := s.store.Upsert(thesis); err != nil {
		return thecics.Thesis{}, err
	}
	if err := s.index.Index(thesis); err != nil {
		return thecics.Thesis{}, err
	}

	return *thesis, nil
}

// Delete removes a thesis from the store and the index. Admin only.
func (s *ThesisService) Delete(user thecics.User, id int) error {
	if !user.IsAdmin() {
		return errAdminOnly()
	}

	if err := s.store.Delete(id); err != nil {
		return err
	}

	return s.index.Delete(id)
}
