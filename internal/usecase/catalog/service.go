package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/repository"
)

// CreateAuthorInput represents the input parameters for creating an author.
type CreateAuthorInput struct {
	Name string
}

// CreateMagazineInput represents the input parameters for creating a magazine.
type CreateMagazineInput struct {
	Name     string
	Category string
}

// PublishInput represents the input parameters for publishing an article.
type PublishInput struct {
	AuthorID   string
	MagazineID string
	Title      string
}

// UpdateMagazineInput represents the input parameters for updating a magazine.
// Fields with nil values will not be updated.
type UpdateMagazineInput struct {
	ID       string
	Name     *string
	Category *string
}

// UpdateArticleInput represents the input parameters for updating an article.
// Fields with nil values will not be updated.
type UpdateArticleInput struct {
	ID         string
	Title      *string
	AuthorID   *string
	MagazineID *string
}

// Stats holds the current entity counts.
type Stats struct {
	Authors   int
	Magazines int
	Articles  int
}

// Service provides catalog use cases.
// Writes are serialized against reads, since entity setters are not
// individually synchronized. Results are returned as views copied under
// the lock; entity pointers never leave the service.
type Service struct {
	Registry  *entity.Registry
	Authors   repository.AuthorRepository
	Magazines repository.MagazineRepository
	Articles  repository.ArticleRepository
	Logger    *slog.Logger

	mu sync.RWMutex
}

// NewService creates a Service over reg and the given repositories.
// A nil logger falls back to slog.Default. A logger carried by the request
// context takes precedence over it.
func NewService(
	reg *entity.Registry,
	authors repository.AuthorRepository,
	magazines repository.MagazineRepository,
	articles repository.ArticleRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Registry:  reg,
		Authors:   authors,
		Magazines: magazines,
		Articles:  articles,
		Logger:    logger,
	}
}

/* ───────── writes ───────── */

// CreateAuthor creates and indexes a new author.
// Returns a ValidationError if the name is empty.
func (s *Service) CreateAuthor(ctx context.Context, in CreateAuthorInput) (_ AuthorView, err error) {
	ctx, done := s.start(ctx, "create_author")
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	author, err := entity.NewAuthor(s.Registry, in.Name)
	if err != nil {
		s.rejected(ctx, metrics.KindAuthor, err)
		return AuthorView{}, fmt.Errorf("create author: %w", err)
	}
	if err := s.Authors.Create(ctx, author); err != nil {
		return AuthorView{}, fmt.Errorf("create author: %w", err)
	}
	metrics.RecordEntityCreated(metrics.KindAuthor)

	s.log(ctx).Info("author created",
		slog.String("author_id", author.ID()),
		slog.String("name", author.Name()))
	return authorView(author), nil
}

// RenameAuthor attempts to change an author's name. Author names are
// write-once, so for an existing author this always returns an
// *entity.ImmutableFieldError and leaves the author unchanged.
func (s *Service) RenameAuthor(ctx context.Context, id, name string) (err error) {
	ctx, done := s.start(ctx, "rename_author")
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	author, err := s.author(ctx, id)
	if err != nil {
		return err
	}
	if err := author.SetName(name); err != nil {
		s.rejected(ctx, metrics.KindAuthor, err)
		return fmt.Errorf("rename author: %w", err)
	}
	return nil
}

// CreateMagazine creates and indexes a new magazine.
// Returns a ValidationError if the name or category is invalid.
func (s *Service) CreateMagazine(ctx context.Context, in CreateMagazineInput) (_ MagazineView, err error) {
	ctx, done := s.start(ctx, "create_magazine")
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	magazine, err := entity.NewMagazine(s.Registry, in.Name, in.Category)
	if err != nil {
		s.rejected(ctx, metrics.KindMagazine, err)
		return MagazineView{}, fmt.Errorf("create magazine: %w", err)
	}
	if err := s.Magazines.Create(ctx, magazine); err != nil {
		return MagazineView{}, fmt.Errorf("create magazine: %w", err)
	}
	metrics.RecordEntityCreated(metrics.KindMagazine)

	s.log(ctx).Info("magazine created",
		slog.String("magazine_id", magazine.ID()),
		slog.String("name", magazine.Name()),
		slog.String("category", magazine.Category()))
	return magazineView(magazine), nil
}

// UpdateMagazine changes a magazine's name and/or category.
// Both values are validated before either is applied, so a rejected update
// leaves the magazine unchanged.
func (s *Service) UpdateMagazine(ctx context.Context, in UpdateMagazineInput) (_ MagazineView, err error) {
	ctx, done := s.start(ctx, "update_magazine")
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	magazine, err := s.magazine(ctx, in.ID)
	if err != nil {
		return MagazineView{}, err
	}

	if in.Name != nil {
		if err := entity.ValidateMagazineName(*in.Name); err != nil {
			s.rejected(ctx, metrics.KindMagazine, err)
			return MagazineView{}, fmt.Errorf("update magazine: %w", err)
		}
	}
	if in.Category != nil {
		if err := entity.ValidateCategory(*in.Category); err != nil {
			s.rejected(ctx, metrics.KindMagazine, err)
			return MagazineView{}, fmt.Errorf("update magazine: %w", err)
		}
	}

	if in.Name != nil {
		if err := magazine.SetName(*in.Name); err != nil {
			return MagazineView{}, fmt.Errorf("update magazine: %w", err)
		}
	}
	if in.Category != nil {
		if err := magazine.SetCategory(*in.Category); err != nil {
			return MagazineView{}, fmt.Errorf("update magazine: %w", err)
		}
	}

	s.log(ctx).Info("magazine updated",
		slog.String("magazine_id", magazine.ID()),
		slog.String("name", magazine.Name()),
		slog.String("category", magazine.Category()))
	return magazineView(magazine), nil
}

// PublishArticle creates an article for the given author and magazine.
// Nothing is registered if any field is invalid.
func (s *Service) PublishArticle(ctx context.Context, in PublishInput) (_ ArticleView, err error) {
	ctx, done := s.start(ctx, "publish_article")
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	author, err := s.author(ctx, in.AuthorID)
	if err != nil {
		return ArticleView{}, err
	}
	magazine, err := s.magazine(ctx, in.MagazineID)
	if err != nil {
		return ArticleView{}, err
	}

	article, err := author.AddArticle(magazine, in.Title)
	if err != nil {
		s.rejected(ctx, metrics.KindArticle, err)
		return ArticleView{}, fmt.Errorf("publish article: %w", err)
	}

	metrics.RecordArticlePublished()
	metrics.RecordEntityCreated(metrics.KindArticle)
	s.log(ctx).Info("article published",
		slog.String("article_id", article.ID()),
		slog.String("author_id", author.ID()),
		slog.String("magazine_id", magazine.ID()),
		slog.String("title", article.Title()))
	return articleView(article), nil
}

// UpdateArticle changes an article's title, author and/or magazine.
// Every referenced entity is resolved and the title validated before anything
// is applied; if a setter still fails, the earlier changes are reverted.
func (s *Service) UpdateArticle(ctx context.Context, in UpdateArticleInput) (_ ArticleView, err error) {
	ctx, done := s.start(ctx, "update_article")
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	article, err := s.article(ctx, in.ID)
	if err != nil {
		return ArticleView{}, err
	}

	var author *entity.Author
	if in.AuthorID != nil {
		if author, err = s.author(ctx, *in.AuthorID); err != nil {
			return ArticleView{}, err
		}
	}
	var magazine *entity.Magazine
	if in.MagazineID != nil {
		if magazine, err = s.magazine(ctx, *in.MagazineID); err != nil {
			return ArticleView{}, err
		}
	}
	if in.Title != nil {
		if err := entity.ValidateTitle(*in.Title); err != nil {
			s.rejected(ctx, metrics.KindArticle, err)
			return ArticleView{}, fmt.Errorf("update article: %w", err)
		}
	}

	prevAuthor, prevMagazine := article.Author(), article.Magazine()
	if author != nil {
		if err := article.SetAuthor(author); err != nil {
			s.rejected(ctx, metrics.KindArticle, err)
			return ArticleView{}, fmt.Errorf("update article: %w", err)
		}
	}
	if magazine != nil {
		if err := article.SetMagazine(magazine); err != nil {
			_ = article.SetAuthor(prevAuthor)
			s.rejected(ctx, metrics.KindArticle, err)
			return ArticleView{}, fmt.Errorf("update article: %w", err)
		}
	}
	if in.Title != nil {
		if err := article.SetTitle(*in.Title); err != nil {
			_ = article.SetAuthor(prevAuthor)
			_ = article.SetMagazine(prevMagazine)
			return ArticleView{}, fmt.Errorf("update article: %w", err)
		}
	}

	s.log(ctx).Info("article updated",
		slog.String("article_id", article.ID()),
		slog.String("author_id", article.Author().ID()),
		slog.String("magazine_id", article.Magazine().ID()),
		slog.String("title", article.Title()))
	return articleView(article), nil
}

/* ───────── lookups ───────── */

// GetAuthor retrieves an author by ID.
func (s *Service) GetAuthor(ctx context.Context, id string) (_ AuthorView, err error) {
	ctx, done := s.start(ctx, "get_author")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()
	author, err := s.author(ctx, id)
	if err != nil {
		return AuthorView{}, err
	}
	return authorView(author), nil
}

// GetMagazine retrieves a magazine by ID.
func (s *Service) GetMagazine(ctx context.Context, id string) (_ MagazineView, err error) {
	ctx, done := s.start(ctx, "get_magazine")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()
	magazine, err := s.magazine(ctx, id)
	if err != nil {
		return MagazineView{}, err
	}
	return magazineView(magazine), nil
}

// GetArticle retrieves an article by ID.
func (s *Service) GetArticle(ctx context.Context, id string) (_ ArticleView, err error) {
	ctx, done := s.start(ctx, "get_article")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()
	article, err := s.article(ctx, id)
	if err != nil {
		return ArticleView{}, err
	}
	return articleView(article), nil
}

// ListAuthors returns every author in creation order.
func (s *Service) ListAuthors(ctx context.Context) ([]AuthorView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors, err := s.Authors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authorViews(authors), nil
}

// ListMagazines returns every magazine in creation order.
func (s *Service) ListMagazines(ctx context.Context) ([]MagazineView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	magazines, err := s.Magazines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	return magazineViews(magazines), nil
}

// ListArticles returns every article in registry order.
func (s *Service) ListArticles(ctx context.Context) ([]ArticleView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles, err := s.Articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articleViews(articles), nil
}

// Stats returns the current entity counts and resynchronizes the entity
// gauges with them.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st Stats
	var err error
	if st.Authors, err = s.Authors.Count(ctx); err != nil {
		return Stats{}, fmt.Errorf("count authors: %w", err)
	}
	if st.Magazines, err = s.Magazines.Count(ctx); err != nil {
		return Stats{}, fmt.Errorf("count magazines: %w", err)
	}
	if st.Articles, err = s.Articles.Count(ctx); err != nil {
		return Stats{}, fmt.Errorf("count articles: %w", err)
	}
	metrics.UpdateEntityCounts(st.Authors, st.Magazines, st.Articles)
	return st, nil
}

/* ───────── helpers ───────── */

func (s *Service) author(ctx context.Context, id string) (*entity.Author, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	a, err := s.Authors.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if a == nil {
		return nil, ErrAuthorNotFound
	}
	return a, nil
}

func (s *Service) magazine(ctx context.Context, id string) (*entity.Magazine, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m, err := s.Magazines.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if m == nil {
		return nil, ErrMagazineNotFound
	}
	return m, nil
}

func (s *Service) article(ctx context.Context, id string) (*entity.Article, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	a, err := s.Articles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if a == nil {
		return nil, ErrArticleNotFound
	}
	return a, nil
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

// start opens a span for op and returns a func that closes it and records
// the operation latency.
func (s *Service) start(ctx context.Context, op string) (context.Context, func(error)) {
	ctx, span := tracing.GetTracer().Start(ctx, "catalog."+op,
		trace.WithAttributes(attribute.String("catalog.operation", op)))
	began := time.Now()
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		metrics.RecordOperation(op, time.Since(began))
	}
}

// log prefers the request-scoped logger carried by ctx, which already has
// the request ID attached.
func (s *Service) log(ctx context.Context) *slog.Logger {
	if logger, ok := logging.Lookup(ctx); ok {
		return logger
	}
	return logging.WithRequestID(ctx, s.Logger)
}

func (s *Service) rejected(ctx context.Context, kind string, err error) {
	metrics.RecordValidationFailure(kind, err)
	s.log(ctx).Warn("write rejected",
		slog.String("entity", kind),
		slog.Any("error", err))
}
