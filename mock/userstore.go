package mock

import (
	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

type UserStore struct {
	db    map[int]*thecics.User
	maxID int
}

func (s *UserStore) Get(id int) (*thecics.User, error) {
	return s.db[id], nil
}

func (s *UserStore) GetByEmail(email string) (*thecics.User, error) {
	for _, user := range s.db {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (s *UserStore) List() ([]*thecics.User, error) {
	users := make([]*thecics.User, 0, len(s.db))
	for _, user := range s.db {
		users = append(users, user)
	}
	return users, nil
}

func (s *UserStore) Upsert(user *thecics.User) error {
	if user.ID <= 0 {
		s.maxID++
		user.ID = s.maxID
	}

	if user.ID > s.maxID {
		s.maxID = user.ID
	}

	if s.db == nil {
		s.db = make(map[int]*thecics.User)
	}
	s.db[user.ID] = user
	return nil
}
