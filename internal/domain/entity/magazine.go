package entity

import "github.com/google/uuid"

// ContributorThreshold is the article count an author must exceed to be
// reported by ContributingAuthors.
const ContributorThreshold = 2

// Magazine is an identity entity with a validated, mutable name and category.
type Magazine struct {
	id       string
	name     string
	category string
	reg      *Registry
}

// NewMagazine creates a magazine bound to reg.
// Returns a ValidationError if name or category is invalid.
func NewMagazine(reg *Registry, name, category string) (*Magazine, error) {
	if err := checkRegistry(reg); err != nil {
		return nil, err
	}
	m := &Magazine{id: uuid.NewString(), reg: reg}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetCategory(category); err != nil {
		return nil, err
	}
	return m, nil
}

// ID returns the magazine's identifier.
func (m *Magazine) ID() string { return m.id }

// Name returns the magazine's name.
func (m *Magazine) Name() string { return m.name }

// Category returns the magazine's category.
func (m *Magazine) Category() string { return m.category }

// SetName replaces the name. An invalid name leaves the current one in place.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// SetCategory replaces the category. An invalid category leaves the current one in place.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	m.category = category
	return nil
}

// Articles returns every article published in the magazine, in registry order.
func (m *Magazine) Articles() []*Article {
	return m.reg.filter(func(art *Article) bool { return art.magazine == m })
}

// Contributors returns the distinct authors who published in the magazine.
func (m *Magazine) Contributors() []*Author {
	arts := m.Articles()
	seen := make(map[*Author]struct{}, len(arts))
	out := make([]*Author, 0, len(arts))
	for _, art := range arts {
		if _, ok := seen[art.author]; ok {
			continue
		}
		seen[art.author] = struct{}{}
		out = append(out, art.author)
	}
	return out
}

// ArticleTitles returns the titles of the magazine's articles in registry
// order. ok is false when the magazine has no articles.
func (m *Magazine) ArticleTitles() (titles []string, ok bool) {
	arts := m.Articles()
	if len(arts) == 0 {
		return nil, false
	}
	titles = make([]string, len(arts))
	for i, art := range arts {
		titles[i] = art.title
	}
	return titles, true
}

// ContributingAuthors returns the authors with more than ContributorThreshold
// articles in the magazine. ok is false when no author qualifies.
func (m *Magazine) ContributingAuthors() (authors []*Author, ok bool) {
	arts := m.Articles()
	counts := make(map[*Author]int, len(arts))
	order := make([]*Author, 0, len(arts))
	for _, art := range arts {
		if counts[art.author] == 0 {
			order = append(order, art.author)
		}
		counts[art.author]++
	}

	for _, a := range order {
		if counts[a] > ContributorThreshold {
			authors = append(authors, a)
		}
	}
	if len(authors) == 0 {
		return nil, false
	}
	return authors, true
}
