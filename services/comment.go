package services

import (
	"fmt"
	"strings"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/errors"
)

func errCommentNotFound(id int) error {
	return errors.New(fmt.Sprintf("comment %d not found", id), errors.NotFound())
}

type CommentService struct {
	store thecics.CommentStore
}

func NewCommentService(store thecics.CommentStore) *CommentService {
	return &CommentService{
		store: store,
	}
}

// List returns the comments on a thesis. Hidden comments are only served to
// admins.
func (s *CommentService) List(user thecics.User, thesisID int) ([]thecics.Comment, error) {
	comments, err := s.store.ByThesis(thesisID)
	if err != nil {
		return nil, err
	}

	if user.IsAdmin() {
		return comments, nil
	}

	visible := make([]thecics.Comment, 0, len(comments))
	for _, comment := range comments {
		if !comment.Hidden {
			visible = append(visible, comment)
		}
	}
	return visible, nil
}

func (s *CommentService) Add(user thecics.User, thesisID int, body string) (thecics.Comment, error) {
	if user.Status == thecics.UserRestricted {
		return thecics.Comment{}, errRestricted()
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return thecics.Comment{}, errors.New("body is required", errors.BadRequest())
	}

	comment := thecics.Comment{
		ThesisID: thesisID,
		UserID:   user.ID,
		Body:     body,
	}
	if err := s.store.Insert(&comment); err != nil {
		return thecics.Comment{}, err
	}

	return comment, nil
}

// Hide keeps the comment in the store but removes it from member views.
// Admin only.
func (s *CommentService) Hide(user thecics.User, id int) (thecics.Comment, error) {
	if !user.IsAdmin() {
		return thecics.Comment{}, errAdminOnly()
	}

	comment, err := s.store.Get(id)
	if err != nil {
		return thecics.Comment{}, err
	} else if comment == nil {
		return thecics.Comment{}, errCommentNotFound(id)
	}

	comment.Hidden = true
	if err := s.store.Update(comment); err != nil {
		return thecics.Comment{}, err
	}

	return *comment, nil
}

// Delete removes the comment for good. Admin only.
func (s *CommentService) Delete(user thecics.User, id int) error {
	if !user.IsAdmin() {
		return errAdminOnly()
	}

	comment, err := s.store.Get(id)
	if err != nil {
		return err
	} else if comment == nil {
		return errCommentNotFound(id)
	}

	return s.store.Delete(id)
}
