package mock

import (
	"sort"
	"strings"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

// ThesisIndex is a naive in-memory substitute for the bleve index: word
// matching is prefix-on-lowercase over title, abstract, keywords and author.
type ThesisIndex struct {
	db map[int]*thecics.Thesis
}

func (s *ThesisIndex) Index(thesis *thecics.Thesis) error {
	if s.db == nil {
		s.db = make(map[int]*thecics.Thesis)
	}
	s.db[thesis.ID] = thesis
	return nil
}

func (s *ThesisIndex) Delete(id int) error {
	delete(s.db, id)
	return nil
}

func (s *ThesisIndex) Search(search thecics.ThesisSearch) (thecics.ThesisSearchResults, error) {
	var ids []int
	for id, thesis := range s.db {
		if matches(thesis, search) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	total := uint64(len(ids))
	if search.Offset > 0 {
		if search.Offset >= total {
			ids = nil
		} else {
			ids = ids[search.Offset:]
		}
	}
	if search.Limit > 0 && uint64(len(ids)) > search.Limit {
		ids = ids[:search.Limit]
	}

	return thecics.ThesisSearchResults{
		IDs: ids,
		Pagination: thecics.Pagination{
			Total:  total,
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}, nil
}

func matches(thesis *thecics.Thesis, search thecics.ThesisSearch) bool {
	if search.IDs != nil && !containsInt(search.IDs, thesis.ID) {
		return false
	}

	if len(search.Statuses) > 0 {
		ok := false
		for _, status := range search.Statuses {
			if thesis.Status == status {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if search.Year != 0 && thesis.Year != search.Year {
		return false
	}

	for _, keyword := range search.Keywords {
		if !containsFold(thesis.Keywords, keyword) {
			return false
		}
	}

	text := strings.ToLower(strings.Join(append([]string{
		thesis.Title, thesis.Abstract, thesis.AuthorName,
	}, thesis.Keywords...), " "))
	for _, word := range strings.Fields(strings.ToLower(search.Q)) {
		if !strings.Contains(text, word) {
			return false
		}
	}

	return true
}

func containsInt(a []int, v int) bool {
	for _, i := range a {
		if i == v {
			return true
		}
	}
	return false
}

func containsFold(a []string, v string) bool {
	for _, s := range a {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
