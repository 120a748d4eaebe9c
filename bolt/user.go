package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

var userBucket = []byte("users")

type UserStore struct {
	Driver *Driver
}

func (s *UserStore) Get(id int) (*thecics.User, error) {
	var user *thecics.User
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		user = &thecics.User{}
		return json.Unmarshal(data, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserStore) GetByEmail(email string) (*thecics.User, error) {
	var user *thecics.User

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)
		c := bucket.Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var u thecics.User
			if err := json.Unmarshal(data, &u); err != nil {
				return err
			}

			if u.Email == email {
				user = &u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserStore) Upsert(user *thecics.User) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		if user.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			user.ID = int(id)
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		return bucket.Put(itob(user.ID), data)
	})
}

func (s *UserStore) List() ([]*thecics.User, error) {
	var users []*thecics.User

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var user thecics.User
			if err := json.Unmarshal(data, &user); err != nil {
				return err
			}
			users = append(users, &user)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return users, nil
}
