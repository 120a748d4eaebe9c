package mock

import (
	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

// CitationStore keeps events in memory. Set Err to make every call fail,
// for exercising the degraded paths.
type CitationStore struct {
	Events []thecics.CitationEvent
	Err    error

	maxID int
}

func (s *CitationStore) Insert(event *thecics.CitationEvent) error {
	if s.Err != nil {
		return s.Err
	}

	s.maxID++
	event.ID = s.maxID
	s.Events = append(s.Events, *event)
	return nil
}

func (s *CitationStore) ByThesis(thesisID int) ([]thecics.CitationEvent, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	var events []thecics.CitationEvent
	for _, event := range s.Events {
		if event.ThesisID == thesisID {
			events = append(events, event)
		}
	}
	return events, nil
}
