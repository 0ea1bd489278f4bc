package catalog

import "magazine-catalog/internal/domain/entity"

// AuthorView is a copy of an author's fields taken while the service lock
// is held. Callers may read it freely after the call returns.
type AuthorView struct {
	ID   string
	Name string
}

// MagazineView is a copy of a magazine's fields.
type MagazineView struct {
	ID       string
	Name     string
	Category string
}

// ArticleView is a copy of an article's fields with its author and
// magazine resolved.
type ArticleView struct {
	ID           string
	Title        string
	AuthorID     string
	AuthorName   string
	MagazineID   string
	MagazineName string
}

func authorView(a *entity.Author) AuthorView {
	return AuthorView{ID: a.ID(), Name: a.Name()}
}

func magazineView(m *entity.Magazine) MagazineView {
	return MagazineView{ID: m.ID(), Name: m.Name(), Category: m.Category()}
}

func articleView(a *entity.Article) ArticleView {
	author, magazine := a.Author(), a.Magazine()
	return ArticleView{
		ID:           a.ID(),
		Title:        a.Title(),
		AuthorID:     author.ID(),
		AuthorName:   author.Name(),
		MagazineID:   magazine.ID(),
		MagazineName: magazine.Name(),
	}
}

// The slice helpers keep nil as nil so "no result" stays distinguishable.

func authorViews(in []*entity.Author) []AuthorView {
	if in == nil {
		return nil
	}
	out := make([]AuthorView, len(in))
	for i, a := range in {
		out[i] = authorView(a)
	}
	return out
}

func magazineViews(in []*entity.Magazine) []MagazineView {
	if in == nil {
		return nil
	}
	out := make([]MagazineView, len(in))
	for i, m := range in {
		out[i] = magazineView(m)
	}
	return out
}

func articleViews(in []*entity.Article) []ArticleView {
	if in == nil {
		return nil
	}
	out := make([]ArticleView, len(in))
	for i, a := range in {
		out[i] = articleView(a)
	}
	return out
}
