package entity

import "github.com/google/uuid"

// Article links one Author to one Magazine under a title.
// Articles are only created through NewArticle or Author.AddArticle, which
// register them with the registry once every field has been validated.
type Article struct {
	id       string
	author   *Author
	magazine *Magazine
	title    string
	reg      *Registry
}

// NewArticle validates author, magazine and title and registers the new
// article with reg. On any validation failure nothing is registered.
func NewArticle(reg *Registry, author *Author, magazine *Magazine, title string) (*Article, error) {
	if err := checkRegistry(reg); err != nil {
		return nil, err
	}
	if err := validateAuthorRef(reg, author); err != nil {
		return nil, err
	}
	if err := validateMagazineRef(reg, magazine); err != nil {
		return nil, err
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	art := &Article{
		id:       uuid.NewString(),
		author:   author,
		magazine: magazine,
		title:    title,
		reg:      reg,
	}
	reg.register(art)
	return art, nil
}

// ID returns the article's identifier.
func (a *Article) ID() string { return a.id }

// Author returns the article's author.
func (a *Article) Author() *Author { return a.author }

// Magazine returns the magazine the article was published in.
func (a *Article) Magazine() *Magazine { return a.magazine }

// Title returns the article's title.
func (a *Article) Title() string { return a.title }

// SetTitle replaces the title. An invalid title leaves the current one in place.
func (a *Article) SetTitle(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	a.title = title
	return nil
}

// SetAuthor reassigns the article to another author from the same registry.
func (a *Article) SetAuthor(author *Author) error {
	if err := validateAuthorRef(a.reg, author); err != nil {
		return err
	}
	a.author = author
	return nil
}

// SetMagazine moves the article to another magazine from the same registry.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if err := validateMagazineRef(a.reg, magazine); err != nil {
		return err
	}
	a.magazine = magazine
	return nil
}
