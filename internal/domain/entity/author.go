package entity

import "github.com/google/uuid"

// Author is an identity entity whose name is assigned exactly once.
type Author struct {
	id   string
	name string
	reg  *Registry
}

// NewAuthor creates an author bound to reg.
// Returns a ValidationError if name is empty.
func NewAuthor(reg *Registry, name string) (*Author, error) {
	if err := checkRegistry(reg); err != nil {
		return nil, err
	}
	a := &Author{id: uuid.NewString(), reg: reg}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

// ID returns the author's identifier.
func (a *Author) ID() string { return a.id }

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// SetName assigns the name. It succeeds only while no name has been set;
// any later call returns an *ImmutableFieldError and leaves the name unchanged.
func (a *Author) SetName(name string) error {
	if a.name != "" {
		return &ImmutableFieldError{Field: "name"}
	}
	if err := ValidateAuthorName(name); err != nil {
		return err
	}
	a.name = name
	return nil
}

// Articles returns every article written by the author, in registry order.
func (a *Author) Articles() []*Article {
	return a.reg.filter(func(art *Article) bool { return art.author == a })
}

// Magazines returns the distinct magazines the author has written for,
// in the order they first appear in the registry.
func (a *Author) Magazines() []*Magazine {
	arts := a.Articles()
	seen := make(map[*Magazine]struct{}, len(arts))
	out := make([]*Magazine, 0, len(arts))
	for _, art := range arts {
		if _, ok := seen[art.magazine]; ok {
			continue
		}
		seen[art.magazine] = struct{}{}
		out = append(out, art.magazine)
	}
	return out
}

// AddArticle creates and registers a new article by this author.
// Nothing is registered if validation fails.
func (a *Author) AddArticle(m *Magazine, title string) (*Article, error) {
	return NewArticle(a.reg, a, m, title)
}

// TopicAreas returns the distinct categories of the magazines the author has
// written for. ok is false when the author has no articles.
func (a *Author) TopicAreas() (categories []string, ok bool) {
	mags := a.Magazines()
	if len(mags) == 0 {
		return nil, false
	}
	seen := make(map[string]struct{}, len(mags))
	categories = make([]string, 0, len(mags))
	for _, m := range mags {
		if _, dup := seen[m.category]; dup {
			continue
		}
		seen[m.category] = struct{}{}
		categories = append(categories, m.category)
	}
	return categories, true
}
