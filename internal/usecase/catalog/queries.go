package catalog

import "context"

// AuthorArticles returns the author's articles in registry order.
func (s *Service) AuthorArticles(ctx context.Context, id string) (_ []ArticleView, err error) {
	ctx, done := s.start(ctx, "author_articles")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	author, err := s.author(ctx, id)
	if err != nil {
		return nil, err
	}
	return articleViews(author.Articles()), nil
}

// AuthorMagazines returns the distinct magazines the author has written for.
func (s *Service) AuthorMagazines(ctx context.Context, id string) (_ []MagazineView, err error) {
	ctx, done := s.start(ctx, "author_magazines")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	author, err := s.author(ctx, id)
	if err != nil {
		return nil, err
	}
	return magazineViews(author.Magazines()), nil
}

// AuthorTopicAreas returns the distinct categories the author has written in.
// ok is false when the author has no articles.
func (s *Service) AuthorTopicAreas(ctx context.Context, id string) (_ []string, ok bool, err error) {
	ctx, done := s.start(ctx, "author_topic_areas")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	author, err := s.author(ctx, id)
	if err != nil {
		return nil, false, err
	}
	areas, ok := author.TopicAreas()
	return areas, ok, nil
}

// AddArticle publishes an article on behalf of the author identified by authorID.
func (s *Service) AddArticle(ctx context.Context, authorID, magazineID, title string) (ArticleView, error) {
	return s.PublishArticle(ctx, PublishInput{AuthorID: authorID, MagazineID: magazineID, Title: title})
}

// MagazineArticles returns the magazine's articles in registry order.
func (s *Service) MagazineArticles(ctx context.Context, id string) (_ []ArticleView, err error) {
	ctx, done := s.start(ctx, "magazine_articles")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	magazine, err := s.magazine(ctx, id)
	if err != nil {
		return nil, err
	}
	return articleViews(magazine.Articles()), nil
}

// MagazineContributors returns the distinct authors published in the magazine.
func (s *Service) MagazineContributors(ctx context.Context, id string) (_ []AuthorView, err error) {
	ctx, done := s.start(ctx, "magazine_contributors")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	magazine, err := s.magazine(ctx, id)
	if err != nil {
		return nil, err
	}
	return authorViews(magazine.Contributors()), nil
}

// MagazineArticleTitles returns the titles of the magazine's articles.
// ok is false when the magazine has no articles.
func (s *Service) MagazineArticleTitles(ctx context.Context, id string) (_ []string, ok bool, err error) {
	ctx, done := s.start(ctx, "magazine_article_titles")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	magazine, err := s.magazine(ctx, id)
	if err != nil {
		return nil, false, err
	}
	titles, ok := magazine.ArticleTitles()
	return titles, ok, nil
}

// MagazineContributingAuthors returns the authors with more than
// entity.ContributorThreshold articles in the magazine.
// ok is false when no author qualifies.
func (s *Service) MagazineContributingAuthors(ctx context.Context, id string) (_ []AuthorView, ok bool, err error) {
	ctx, done := s.start(ctx, "magazine_contributing_authors")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	magazine, err := s.magazine(ctx, id)
	if err != nil {
		return nil, false, err
	}
	authors, ok := magazine.ContributingAuthors()
	return authorViews(authors), ok, nil
}
