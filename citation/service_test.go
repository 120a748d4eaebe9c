package citation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/log"
	"github.com/RenardMacorol/TheCICS-sub000/mock"
)

func createService(t *testing.T) (*Service, *mock.CitationStore) {
	store := &mock.CitationStore{}
	return NewService(store, log.New("test")), store
}

func TestService_Stats_Empty(t *testing.T) {
	service, _ := createService(t)

	stats := service.Stats(42, 0)
	assert.Equal(t, thecics.CitationStats{}, stats)
}

func TestService_RecordThenStats(t *testing.T) {
	service, _ := createService(t)

	before := service.Stats(42, 7)
	require.True(t, service.RecordCitation(42, 7, thecics.FormatAPA))

	stats := service.Stats(42, 7)
	assert.Equal(t, before.Total+1, stats.Total)
	assert.True(t, stats.HasCited)
}

func TestService_Stats_UniqueUsers(t *testing.T) {
	service, _ := createService(t)

	// Same user twice: total 2, unique 1.
	require.True(t, service.RecordCitation(42, 7, thecics.FormatAPA))
	require.True(t, service.RecordCitation(42, 7, thecics.FormatMLA))

	stats := service.Stats(42, 7)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.UniqueUsers)

	// A second user bumps both counts.
	require.True(t, service.RecordLink(42, 8))
	stats = service.Stats(42, 7)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.UniqueUsers)
}

func TestService_Stats_AnonymousEvents(t *testing.T) {
	service, _ := createService(t)

	require.True(t, service.RecordCitation(42, 0, thecics.FormatChicago))
	require.True(t, service.RecordLink(42, 0))

	stats := service.Stats(42, 0)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 0, stats.UniqueUsers)
	assert.False(t, stats.HasCited, "anonymous callers never count as having cited")
}

func TestService_Stats_OtherThesisExcluded(t *testing.T) {
	service, _ := createService(t)

	require.True(t, service.RecordCitation(42, 7, thecics.FormatAPA))
	require.True(t, service.RecordCitation(43, 7, thecics.FormatAPA))

	stats := service.Stats(42, 8)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.UniqueUsers)
	assert.False(t, stats.HasCited)
}

func TestService_LinkEventsCarryNoFormat(t *testing.T) {
	service, store := createService(t)

	require.True(t, service.RecordLink(42, 7))
	require.Len(t, store.Events, 1)

	event := store.Events[0]
	assert.Equal(t, thecics.CitationTypeLink, event.Type)
	assert.Empty(t, event.Format)
	assert.False(t, event.CopiedAt.IsZero(), "CopiedAt is set at record time")
}

func TestService_DegradedPaths(t *testing.T) {
	service, store := createService(t)
	store.Err = errors.New("table unavailable")

	// A failed write reports false and records nothing.
	assert.False(t, service.RecordCitation(42, 7, thecics.FormatAPA))
	assert.Empty(t, store.Events)

	// A failed fetch yields zero-valued stats, not an error.
	assert.Equal(t, thecics.CitationStats{}, service.Stats(42, 7))
}
