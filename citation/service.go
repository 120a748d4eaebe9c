package citation

import (
	"time"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/log"
)

// Service records citation events and derives per-thesis statistics from
// the event log. Both operations are best-effort: a failure is logged and
// degraded to a safe default instead of blocking the copy flow.
type Service struct {
	store  thecics.CitationStore
	logger log.Logger
}

func NewService(store thecics.CitationStore, logger log.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// RecordCitation logs the copy of a formatted citation. userID 0 records an
// anonymous copy.
func (s *Service) RecordCitation(thesisID, userID int, format thecics.CitationFormat) bool {
	event := thecics.NewCitationCopy(thesisID, userID, format)
	return s.record(&event)
}

// RecordLink logs the copy of a raw permalink. Link events carry no format.
func (s *Service) RecordLink(thesisID, userID int) bool {
	event := thecics.NewLinkCopy(thesisID, userID)
	return s.record(&event)
}

func (s *Service) record(event *thecics.CitationEvent) bool {
	event.CopiedAt = time.Now()

	if err := s.store.Insert(event); err != nil {
		s.logger.Errorf("could not record %s event for thesis %d: %v", event.Type, event.ThesisID, err)
		return false
	}
	return true
}

// Stats reduces the event log for a thesis to aggregate counts. Anonymous
// events count towards the total but not towards the unique-user count.
// A failed fetch yields zero-valued stats: statistics never block anything.
func (s *Service) Stats(thesisID, userID int) thecics.CitationStats {
	events, err := s.store.ByThesis(thesisID)
	if err != nil {
		s.logger.Errorf("could not fetch citation events for thesis %d: %v", thesisID, err)
		return thecics.CitationStats{}
	}

	stats := thecics.CitationStats{Total: len(events)}

	seen := make(map[int]struct{})
	for _, event := range events {
		if event.UserID == 0 {
			continue
		}

		seen[event.UserID] = struct{}{}
		if event.UserID == userID {
			stats.HasCited = true
		}
	}
	stats.UniqueUsers = len(seen)

	return stats
}
