package mock

import (
	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

type ThesisStore struct {
	db    map[int]*thecics.Thesis
	maxID int
}

func (s *ThesisStore) Get(ids ...int) ([]*thecics.Thesis, error) {
	theses := make([]*thecics.Thesis, 0, len(ids))
	for _, id := range ids {
		if thesis, ok := s.db[id]; ok {
			theses = append(theses, thesis)
		}
	}
	return theses, nil
}

func (s *ThesisStore) List() ([]*thecics.Thesis, error) {
	theses := make([]*thecics.Thesis, 0, len(s.db))
	for _, thesis := range s.db {
		theses = append(theses, thesis)
	}
	return theses, nil
}

func (s *ThesisStore) Upsert(thesis *thecics.Thesis) error {
	if thesis.ID <= 0 {
		s.maxID++
		thesis.ID = s.maxID
	}

	if thesis.ID > s.maxID {
		s.maxID = thesis.ID
	}

	if s.db == nil {
		s.db = make(map[int]*thecics.Thesis)
	}
	s.db[thesis.ID] = thesis
	return nil
}

func (s *ThesisStore) Delete(id int) error {
	delete(s.db, id)
	return nil
}
