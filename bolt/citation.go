package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

var citationBucket = []byte("citations")

// CitationStore is the append-only citation event log. Events are grouped
// in a sub-bucket per thesis so ByThesis is a single range scan, which is
// the select-by-equality the citation module needs.
type CitationStore struct {
	Driver *Driver
}

func (s *CitationStore) Insert(event *thecics.CitationEvent) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.Bucket(citationBucket).CreateBucketIfNotExists(itob(event.ThesisID))
		if err != nil {
			return fmt.Errorf("create thesis bucket: %v", err)
		}

		id, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("error incrementing id: %v", err)
		}
		event.ID = int(id)

		data, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return bucket.Put(itob(event.ID), data)
	})
}

func (s *CitationStore) ByThesis(thesisID int) ([]thecics.CitationEvent, error) {
	var events []thecics.CitationEvent

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(citationBucket).Bucket(itob(thesisID))
		if bucket == nil {
			// No event recorded for this thesis yet.
			return nil
		}

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var event thecics.CitationEvent
			if err := json.Unmarshal(data, &event); err != nil {
				return err
			}
			events = append(events, event)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return events, nil
}
