package services

import (
	"fmt"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/errors"
)

func errUserNotFound(id int) error {
	return errors.New(fmt.Sprintf("user %d not found", id), errors.NotFound())
}

type UserService struct {
	store thecics.UserStore
}

func NewUserService(store thecics.UserStore) *UserService {
	return &UserService{
		store: store,
	}
}

func (s *UserService) Get(id int) (thecics.User, error) {
	user, err := s.store.Get(id)
	if err != nil {
		return thecics.User{}, err
	} else if user == nil {
		return thecics.User{}, errUserNotFound(id)
	}

	return *user, nil
}

// ToggleBookmark adds or removes thesisID from the user's bookmarks and
// returns the updated list.
func (s *UserService) ToggleBookmark(user thecics.User, thesisID int) ([]int, error) {
	stored, err := s.store.Get(user.ID)
	if err != nil {
		return nil, err
	} else if stored == nil {
		return nil, errUserNotFound(user.ID)
	}

	stored.Bookmarks = toggle(stored.Bookmarks, thesisID)
	if err := s.store.Upsert(stored); err != nil {
		return nil, err
	}

	return stored.Bookmarks, nil
}

// ToggleLike adds or removes thesisID from the user's likes and returns the
// updated list.
func (s *UserService) ToggleLike(user thecics.User, thesisID int) ([]int, error) {
	stored, err := s.store.Get(user.ID)
	if err != nil {
		return nil, err
	} else if stored == nil {
		return nil, errUserNotFound(user.ID)
	}

	stored.Likes = toggle(stored.Likes, thesisID)
	if err := s.store.Upsert(stored); err != nil {
		return nil, err
	}

	return stored.Likes, nil
}

// List returns every user. Admin only.
func (s *UserService) List(caller thecics.User) ([]thecics.User, error) {
	if !caller.IsAdmin() {
		return nil, errAdminOnly()
	}

	pointers, err := s.store.List()
	if err != nil {
		return nil, err
	}

	users := make([]thecics.User, 0, len(pointers))
	for _, user := range pointers {
		users = append(users, *user)
	}
	return users, nil
}

// Activate lifts a user's restriction. Admin only.
func (s *UserService) Activate(caller thecics.User, id int) (thecics.User, error) {
	return s.setStatus(caller, id, thecics.UserActive)
}

// Restrict blocks a user from submitting theses and comments. Admin only.
func (s *UserService) Restrict(caller thecics.User, id int) (thecics.User, error) {
	return s.setStatus(caller, id, thecics.UserRestricted)
}

func (s *UserService) setStatus(caller thecics.User, id int, status thecics.UserStatus) (thecics.User, error) {
	if !caller.IsAdmin() {
		return thecics.User{}, errAdminOnly()
	}

	user, err := s.store.Get(id)
	if err != nil {
		return thecics.User{}, err
	} else if user == nil {
		return thecics.User{}, errUserNotFound(id)
	}

	user.Status = status
	if err := s.store.Upsert(user); err != nil {
		return thecics.User{}, err
	}

	return *user, nil
}

// Update renames a user. Admin only.
func (s *UserService) Update(caller thecics.User, id int, name string) (thecics.User, error) {
	if !caller.IsAdmin() {
		return thecics.User{}, errAdminOnly()
	}
	if name == "" {
		return thecics.User{}, errors.New("name is required", errors.BadRequest())
	}

	user, err := s.store.Get(id)
	if err != nil {
		return thecics.User{}, err
	} else if user == nil {
		return thecics.User{}, errUserNotFound(id)
	}

	user.Name = name
	if err := s.store.Upsert(user); err != nil {
		return thecics.User{}, err
	}

	return *user, nil
}

func toggle(a []int, v int) []int {
	for i, e := range a {
		if e == v {
			return append(a[:i], a[i+1:]...)
		}
	}
	return append(a, v)
}
