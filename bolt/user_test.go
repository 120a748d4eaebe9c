package bolt

import (
	"testing"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

func TestUserStore_Upsert_Get(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &UserStore{Driver: driver}

	user := thecics.User{
		Name:   "Juan Dela Cruz",
		Email:  "juan@example.edu",
		Role:   thecics.RoleMember,
		Status: thecics.UserActive,
	}
	if err := store.Upsert(&user); err != nil {
		t.Fatal("error inserting:", err)
	}
	if user.ID <= 0 {
		t.Fatal("upsert should assign an id")
	}

	retrieved, err := store.Get(user.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved == nil {
		t.Fatal("user not found")
	} else if retrieved.Email != user.Email || retrieved.Role != user.Role {
		t.Fatalf("incorrect user retrieved: expected %+v got %+v", user, *retrieved)
	}

	retrieved, err = store.Get(user.ID + 1)
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved != nil {
		t.Fatalf("expected nil for unknown id, got %+v", retrieved)
	}
}

func TestUserStore_GetByEmail(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := &UserStore{Driver: driver}

	users := []thecics.User{
		{Name: "Juan", Email: "juan@example.edu"},
		{Name: "Maria", Email: "maria@example.edu"},
	}
	for i := range users {
		if err := store.Upsert(&users[i]); err != nil {
			t.Fatal("error inserting:", err)
		}
	}

	retrieved, err := store.GetByEmail("maria@example.edu")
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved == nil || retrieved.Name != "Maria" {
		t.Fatalf("incorrect user retrieved: %+v", retrieved)
	}

	retrieved, err = store.GetByEmail("nobody@example.edu")
	if err != nil {
		t.Fatal("error getting:", err)
	} else if retrieved != nil {
		t.Fatalf("expected nil for unknown email, got %+v", retrieved)
	}
}
