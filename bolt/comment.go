package bolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

var commentBucket = []byte("comments")

type CommentStore struct {
	Driver *Driver
}

func (s *CommentStore) Get(id int) (*thecics.Comment, error) {
	var comment *thecics.Comment
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(commentBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		comment = &thecics.Comment{}
		return json.Unmarshal(data, comment)
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentStore) ByThesis(thesisID int) ([]thecics.Comment, error) {
	var comments []thecics.Comment

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(commentBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var comment thecics.Comment
			if err := json.Unmarshal(data, &comment); err != nil {
				return err
			}

			if comment.ThesisID == thesisID {
				comments = append(comments, comment)
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (s *CommentStore) Insert(comment *thecics.Comment) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(commentBucket)

		if comment.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			comment.ID = int(id)
			comment.CreatedAt = time.Now()
		}

		data, err := json.Marshal(comment)
		if err != nil {
			return err
		}

		return bucket.Put(itob(comment.ID), data)
	})
}

func (s *CommentStore) Update(comment *thecics.Comment) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(commentBucket)

		data, err := json.Marshal(comment)
		if err != nil {
			return err
		}

		return bucket.Put(itob(comment.ID), data)
	})
}

func (s *CommentStore) Delete(id int) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(commentBucket)
		return bucket.Delete(itob(id))
	})
}
