package bolt

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
)

var buckets = [][]byte{
	thesisBucket,
	userBucket,
	citationBucket,
	commentBucket,
}

// Driver holds the bolt database shared by all the stores.
type Driver struct {
	store *bolt.DB
}

func (d *Driver) Open(path string) error {
	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}

	err = store.Update(func(tx *bolt.Tx) error {
		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("create bucket %s: %v", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		store.Close()
		return err
	}

	d.store = store
	return nil
}

func (d *Driver) Close() error {
	if d.store == nil {
		return nil
	}
	return d.store.Close()
}

// itob returns an 8-byte big endian representation of v.
func itob(v int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
