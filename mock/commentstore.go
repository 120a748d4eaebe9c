package mock

import (
	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

type CommentStore struct {
	db    map[int]*thecics.Comment
	maxID int
}

func (s *CommentStore) Get(id int) (*thecics.Comment, error) {
	return s.db[id], nil
}

func (s *CommentStore) ByThesis(thesisID int) ([]thecics.Comment, error) {
	var comments []thecics.Comment
	for id := 1; id <= s.maxID; id++ {
		comment, ok := s.db[id]
		if !ok || comment.ThesisID != thesisID {
			continue
		}
		comments = append(comments, *comment)
	}
	return comments, nil
}

func (s *CommentStore) Insert(comment *thecics.Comment) error {
	if comment.ID <= 0 {
		s.maxID++
		comment.ID = s.maxID
	}

	if comment.ID > s.maxID {
		s.maxID = comment.ID
	}

	if s.db == nil {
		s.db = make(map[int]*thecics.Comment)
	}
	s.db[comment.ID] = comment
	return nil
}

func (s *CommentStore) Update(comment *thecics.Comment) error {
	return s.Insert(comment)
}

func (s *CommentStore) Delete(id int) error {
	delete(s.db, id)
	return nil
}
