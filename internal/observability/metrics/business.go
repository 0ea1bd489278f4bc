package metrics

import (
	"errors"
	"time"

	"magazine-catalog/internal/domain/entity"
)

// Entity kinds used as label values.
const (
	KindAuthor   = "author"
	KindMagazine = "magazine"
	KindArticle  = "article"
)

// RecordArticlePublished records a successfully registered article.
func RecordArticlePublished() {
	ArticlesPublishedTotal.Inc()
}

// RecordValidationFailure records a rejected write for the given entity kind.
// The field label comes from the *entity.ValidationError in err's chain;
// immutability violations are labelled by their field as well.
// Errors of any other kind are not recorded.
func RecordValidationFailure(kind string, err error) {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		ValidationFailuresTotal.WithLabelValues(kind, ve.Field).Inc()
		return
	}
	var ie *entity.ImmutableFieldError
	if errors.As(err, &ie) {
		ValidationFailuresTotal.WithLabelValues(kind, ie.Field).Inc()
	}
}

// UpdateEntityCounts sets the entity gauges to the given counts.
func UpdateEntityCounts(authors, magazines, articles int) {
	EntitiesTotal.WithLabelValues(KindAuthor).Set(float64(authors))
	EntitiesTotal.WithLabelValues(KindMagazine).Set(float64(magazines))
	EntitiesTotal.WithLabelValues(KindArticle).Set(float64(articles))
}

// RecordEntityCreated bumps the entity gauge for kind after a successful create.
func RecordEntityCreated(kind string) {
	EntitiesTotal.WithLabelValues(kind).Inc()
}

// RecordOperation records the duration of a use-case operation.
func RecordOperation(operation string, duration time.Duration) {
	OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
