package bleve

import (
	"strconv"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"
	"github.com/blevesearch/bleve/search/query"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

type ThesisIndex struct {
	index bleve.Index
}

// Open opens the index at path, creating it with the thesis mapping when it
// does not exist yet.
func (s *ThesisIndex) Open(path string) error {
	index, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(path, buildMapping())
	}
	if err != nil {
		return err
	}

	s.index = index
	return nil
}

func (s *ThesisIndex) Close() error {
	if s.index == nil {
		return nil
	}

	return s.index.Close()
}

func buildMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()
	text.Analyzer = en.AnalyzerName

	exact := bleve.NewTextFieldMapping()
	exact.Analyzer = keyword.Name

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", text)
	doc.AddFieldMappingsAt("abstract", text)
	doc.AddFieldMappingsAt("author", text)
	doc.AddFieldMappingsAt("keywords", exact)
	doc.AddFieldMappingsAt("status", exact)
	doc.AddFieldMappingsAt("year", bleve.NewNumericFieldMapping())

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

func (s *ThesisIndex) Index(thesis *thecics.Thesis) error {
	keywords := make([]string, len(thesis.Keywords))
	for i, kw := range thesis.Keywords {
		keywords[i] = strings.ToLower(kw)
	}

	data := map[string]interface{}{
		"title":    thesis.Title,
		"abstract": thesis.Abstract,
		"author":   thesis.AuthorName,
		"keywords": keywords,
		"status":   string(thesis.Status),
		"year":     float64(thesis.Year),
	}

	return s.index.Index(strconv.Itoa(thesis.ID), data)
}

func (s *ThesisIndex) Delete(id int) error {
	return s.index.Delete(strconv.Itoa(id))
}

func (s *ThesisIndex) Search(search thecics.ThesisSearch) (thecics.ThesisSearchResults, error) {
	q := andQ(
		query.NewMatchAllQuery(),
		s.searchText(search.Q),
		s.searchIDs(search.IDs),
		s.keywordsQuery(search.Keywords),
		s.statusQuery(search.Statuses),
		s.yearQuery(search.Year),
	)

	searchRequest := bleve.NewSearchRequest(q)
	searchRequest.SortBy([]string{"_id"})

	if search.Limit > 0 {
		searchRequest.Size = int(search.Limit)
	}
	searchRequest.From = int(search.Offset)

	searchResults, err := s.index.Search(searchRequest)
	if err != nil {
		return thecics.ThesisSearchResults{}, err
	}

	ids := make([]int, len(searchResults.Hits))
	for i, hit := range searchResults.Hits {
		ids[i], err = strconv.Atoi(hit.ID)
		if err != nil {
			return thecics.ThesisSearchResults{}, err
		}
	}

	return thecics.ThesisSearchResults{
		IDs: ids,
		Pagination: thecics.Pagination{
			Total:  searchResults.Total,
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}, nil
}

func andQ(qs ...query.Query) query.Query {
	ands := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ands = append(ands, q)
		}
	}

	if len(ands) == 0 {
		return nil
	}
	return query.NewConjunctionQuery(ands)
}

func orQ(qs ...query.Query) query.Query {
	ors := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ors = append(ors, q)
		}
	}

	if len(ors) == 0 {
		return nil
	}
	return query.NewDisjunctionQuery(ors)
}

// searchText matches every word of the free-text query as a prefix in the
// title, abstract or author name.
func (s *ThesisIndex) searchText(queryString string) query.Query {
	words := strings.Fields(queryString)

	ands := make([]query.Query, 0, len(words))
	for _, word := range words {
		ands = append(ands, orQ(
			s.prefixQuery(word, "title"),
			s.prefixQuery(word, "abstract"),
			s.prefixQuery(word, "author"),
		))
	}

	return andQ(ands...)
}

func (s *ThesisIndex) prefixQuery(queryString, field string) query.Query {
	analyzer := s.index.Mapping().AnalyzerNamed(en.AnalyzerName)
	tokens := analyzer.Analyze([]byte(queryString))
	if len(tokens) == 0 {
		return nil
	}

	conjuncts := make([]query.Query, len(tokens))
	for i, token := range tokens {
		conjuncts[i] = &query.PrefixQuery{
			Prefix:   string(token.Term),
			FieldVal: field,
		}
	}

	return query.NewConjunctionQuery(conjuncts)
}

// searchIDs restricts the results to the given ids. A nil slice means no
// restriction; an empty non-nil slice matches nothing, which is what a
// bookmarked-only search with no bookmarks needs.
func (s *ThesisIndex) searchIDs(ids []int) query.Query {
	if ids == nil {
		return nil
	}

	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.Itoa(id)
	}
	return query.NewDocIDQuery(strs)
}

func (s *ThesisIndex) keywordsQuery(keywords []string) query.Query {
	qs := make([]query.Query, len(keywords))
	for i, kw := range keywords {
		qs[i] = &query.TermQuery{
			Term:     strings.ToLower(kw),
			FieldVal: "keywords",
		}
	}
	return andQ(qs...)
}

func (s *ThesisIndex) statusQuery(statuses []thecics.ThesisStatus) query.Query {
	qs := make([]query.Query, len(statuses))
	for i, status := range statuses {
		qs[i] = &query.TermQuery{
			Term:     string(status),
			FieldVal: "status",
		}
	}
	return orQ(qs...)
}

func (s *ThesisIndex) yearQuery(year int) query.Query {
	if year == 0 {
		return nil
	}

	y := float64(year)
	inclusive := true
	q := query.NewNumericRangeInclusiveQuery(&y, &y, &inclusive, &inclusive)
	q.SetField("year")
	return q
}
