package bolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

var thesisBucket = []byte("theses")

// ThesisStore stores and retrieves theses from a bolt database.
type ThesisStore struct {
	Driver *Driver
}

// Get retrieves the theses for the given ids. Unknown ids are skipped, so
// the result can be shorter than the input.
func (s *ThesisStore) Get(ids ...int) ([]*thecics.Thesis, error) {
	theses := make([]*thecics.Thesis, 0, len(ids))
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(thesisBucket)

		for _, id := range ids {
			data := bucket.Get(itob(id))
			if data == nil {
				continue
			}

			var thesis thecics.Thesis
			if err := json.Unmarshal(data, &thesis); err != nil {
				return err
			}
			theses = append(theses, &thesis)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return theses, nil
}

// Upsert inserts or updates a thesis depending on thesis.ID.
func (s *ThesisStore) Upsert(thesis *thecics.Thesis) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(thesisBucket)

		if thesis.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			thesis.ID = int(id)
			thesis.CreatedAt = time.Now()
		}
		thesis.UpdatedAt = time.Now()

		data, err := json.Marshal(thesis)
		if err != nil {
			return err
		}

		return bucket.Put(itob(thesis.ID), data)
	})
}

func (s *ThesisStore) Delete(id int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(thesisBucket)
		return bucket.Delete(itob(id))
	})
}

func (s *ThesisStore) List() ([]*thecics.Thesis, error) {
	var theses []*thecics.Thesis

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(thesisBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var thesis thecics.Thesis
			if err := json.Unmarshal(data, &thesis); err != nil {
				return err
			}
			theses = append(theses, &thesis)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return theses, nil
}
