package bolt

import (
	"io/ioutil"
	"os"
	"testing"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

func createDriver(t *testing.T) (*Driver, func()) {
	tmpFile, err := ioutil.TempFile("", "")
	if err != nil {
		t.Fatal("could not create tmp file:", err)
	}

	filename := tmpFile.Name()
	driver := &Driver{}
	if err := driver.Open(filename); err != nil {
		os.Remove(filename)
		t.Fatalf("could not open bolt on file %s: %v", filename, err)
	}

	return driver, func() {
		driver.Close()
		os.Remove(filename)
	}
}

func TestThesisStore_Upsert_Get(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &ThesisStore{Driver: driver}

	thesis := thecics.Thesis{Title: "Test", AuthorName: "Juan Dela Cruz", Year: 2024, Status: thecics.ThesisDraft}
	if err := store.Upsert(&thesis); err != nil {
		t.Fatal("error inserting:", err)
	}
	if thesis.ID <= 0 {
		t.Fatal("upsert should assign an id")
	}
	if thesis.CreatedAt.IsZero() {
		t.Fatal("upsert should set createdAt")
	}

	theses, err := store.Get(thesis.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if len(theses) != 1 {
		t.Fatalf("incorrect number of theses retrieved: expected 1 got %d", len(theses))
	}

	retrieved := theses[0]
	if retrieved.ID != thesis.ID || retrieved.Title != thesis.Title ||
		retrieved.AuthorName != thesis.AuthorName || retrieved.Year != thesis.Year ||
		retrieved.Status != thesis.Status {
		t.Fatalf("incorrect thesis retrieved: expected %+v got %+v", thesis, *retrieved)
	}
	if !retrieved.CreatedAt.Equal(thesis.CreatedAt) {
		t.Fatalf("createdAt not preserved: expected %v got %v", thesis.CreatedAt, retrieved.CreatedAt)
	}

	// Unknown ids are skipped.
	theses, err = store.Get(thesis.ID, thesis.ID+1)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if len(theses) != 1 {
		t.Fatalf("incorrect number of theses retrieved: expected 1 got %d", len(theses))
	}
}

func TestThesisStore_Update(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &ThesisStore{Driver: driver}

	thesis := thecics.Thesis{Title: "Test", Status: thecics.ThesisDraft}
	if err := store.Upsert(&thesis); err != nil {
		t.Fatal("error inserting:", err)
	}

	thesis.Status = thecics.ThesisActive
	if err := store.Upsert(&thesis); err != nil {
		t.Fatal("error updating:", err)
	}

	theses, err := store.Get(thesis.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if len(theses) != 1 {
		t.Fatalf("incorrect number of theses retrieved: expected 1 got %d", len(theses))
	} else if retrieved := theses[0]; retrieved.Status != thecics.ThesisActive {
		t.Fatalf("status not updated: got %s", retrieved.Status)
	}
}

func TestThesisStore_Delete(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &ThesisStore{Driver: driver}

	thesis := thecics.Thesis{Title: "Test"}
	if err := store.Upsert(&thesis); err != nil {
		t.Fatal("error inserting:", err)
	}

	if err := store.Delete(thesis.ID); err != nil {
		t.Fatal("error deleting:", err)
	}

	theses, err := store.Get(thesis.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if len(theses) != 0 {
		t.Fatalf("incorrect number of theses retrieved: expected 0 got %d", len(theses))
	}
}

func TestThesisStore_List(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &ThesisStore{Driver: driver}

	titles := []string{"Test", "Test 2", "Test 3"}
	for _, title := range titles {
		if err := store.Upsert(&thecics.Thesis{Title: title}); err != nil {
			t.Fatal("error inserting:", err)
		}
	}

	retrieved, err := store.List()
	if err != nil {
		t.Fatal("error listing:", err)
	} else if len(retrieved) != len(titles) {
		t.Fatalf("incorrect number of theses: expected %d got %d", len(titles), len(retrieved))
	}
	for i, thesis := range retrieved {
		if thesis.Title != titles[i] {
			t.Errorf("incorrect title at %d: expected %s got %s", i, titles[i], thesis.Title)
		}
	}
}
