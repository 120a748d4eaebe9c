package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/errors"
	"github.com/RenardMacorol/TheCICS-sub000/mock"
)

var (
	member = thecics.User{ID: 7, Name: "Juan Dela Cruz", Role: thecics.RoleMember, Status: thecics.UserActive}
	admin  = thecics.User{ID: 1, Name: "Admin", Role: thecics.RoleAdmin, Status: thecics.UserActive}
)

func createThesisService(t *testing.T) (*ThesisService, *mock.ThesisStore) {
	store := &mock.ThesisStore{}
	return NewThesisService(store, &mock.ThesisIndex{}), store
}

func TestThesisService_Submit(t *testing.T) {
	service, _ := createThesisService(t)

	thesis, err := service.Submit(member, thecics.Thesis{Title: "Foo", Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, thecics.ThesisDraft, thesis.Status, "submissions start as drafts")
	assert.Equal(t, member.ID, thesis.AuthorID)
	assert.Equal(t, member.Name, thesis.AuthorName, "author name defaults to the submitter")
	assert.NotZero(t, thesis.ID)
}

func TestThesisService_Submit_Errors(t *testing.T) {
	service, _ := createThesisService(t)

	_, err := service.Submit(member, thecics.Thesis{Year: 2024})
	errors.AssertCode(t, err, http.StatusBadRequest)

	_, err = service.Submit(member, thecics.Thesis{ID: 3, Title: "Foo"})
	errors.AssertCode(t, err, http.StatusBadRequest)

	restricted := member
	restricted.Status = thecics.UserRestricted
	_, err = service.Submit(restricted, thecics.Thesis{Title: "Foo"})
	errors.AssertCode(t, err, http.StatusForbidden)
}

func TestThesisService_Get_Visibility(t *testing.T) {
	service, _ := createThesisService(t)

	thesis, err := service.Submit(member, thecics.Thesis{Title: "Foo"})
	require.NoError(t, err)

	// Drafts: hidden from other members, visible to the author and admins.
	other := thecics.User{ID: 8, Role: thecics.RoleMember}
	_, err = service.Get(other, thesis.ID)
	errors.AssertCode(t, err, http.StatusNotFound)

	_, err = service.Get(member, thesis.ID)
	assert.NoError(t, err)
	_, err = service.Get(admin, thesis.ID)
	assert.NoError(t, err)

	// Approved theses are visible to everybody, including anonymous users.
	_, err = service.Approve(admin, thesis.ID)
	require.NoError(t, err)
	_, err = service.Get(thecics.User{}, thesis.ID)
	assert.NoError(t, err)
}

func TestThesisService_Moderation(t *testing.T) {
	service, _ := createThesisService(t)

	thesis, err := service.Submit(member, thecics.Thesis{Title: "Foo"})
	require.NoError(t, err)

	// Moderation is admin only.
	_, err = service.Approve(member, thesis.ID)
	errors.AssertCode(t, err, http.StatusForbidden)
	err = service.Delete(member, thesis.ID)
	errors.AssertCode(t, err, http.StatusForbidden)

	approved, err := service.Approve(admin, thesis.ID)
	require.NoError(t, err)
	assert.Equal(t, thecics.ThesisActive, approved.Status)

	restricted, err := service.Restrict(admin, thesis.ID)
	require.NoError(t, err)
	assert.Equal(t, thecics.ThesisInactive, restricted.Status)

	err = service.Delete(admin, thesis.ID)
	require.NoError(t, err)
	_, err = service.Get(admin, thesis.ID)
	errors.AssertCode(t, err, http.StatusNotFound)
}

func TestThesisService_Search(t *testing.T) {
	service, _ := createThesisService(t)

	submitted, err := service.Submit(member, thecics.Thesis{Title: "Pizza studies", Keywords: []string{"food"}})
	require.NoError(t, err)
	_, err = service.Submit(member, thecics.Thesis{Title: "Napping through lectures"})
	require.NoError(t, err)
	_, err = service.Approve(admin, submitted.ID)
	require.NoError(t, err)

	// Members only see active theses.
	res, err := service.Search(member, "", nil, 0, false, 0, 0)
	require.NoError(t, err)
	require.Len(t, res.Theses, 1)
	assert.Equal(t, "Pizza studies", res.Theses[0].Title)

	// Admins see drafts too.
	res, err = service.Search(admin, "", nil, 0, false, 0, 0)
	require.NoError(t, err)
	assert.Len(t, res.Theses, 2)

	// Bookmarked-only with no bookmarks matches nothing.
	res, err = service.Search(member, "", nil, 0, true, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Theses)

	bookmarker := member
	bookmarker.Bookmarks = []int{submitted.ID}
	res, err = service.Search(bookmarker, "", nil, 0, true, 0, 0)
	require.NoError(t, err)
	assert.Len(t, res.Theses, 1)
}
