package entity

import "sync"

// Registry is the append-only collection of every Article created against it.
// Insertion order is preserved and is the order of all list-valued queries.
type Registry struct {
	mu       sync.RWMutex
	articles []*Article
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{articles: make([]*Article, 0, 64)}
}

// Len returns the number of registered articles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles)
}

// All returns a snapshot of every registered article in insertion order.
func (r *Registry) All() []*Article {
	return r.filter(func(*Article) bool { return true })
}

// Find returns the article with the given ID.
func (r *Registry) Find(id string) (*Article, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.articles {
		if a.id == id {
			return a, true
		}
	}
	return nil, false
}

// Reset drops every registered article. It exists for test isolation;
// entities created before the reset keep their registry binding.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles = make([]*Article, 0, 64)
}

func (r *Registry) register(a *Article) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles = append(r.articles, a)
}

// filter returns the registered articles matching keep, never nil.
func (r *Registry) filter(keep func(*Article) bool) []*Article {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Article, 0, len(r.articles))
	for _, a := range r.articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func checkRegistry(reg *Registry) error {
	if reg == nil {
		return &ValidationError{Field: "registry", Message: "registry is required"}
	}
	return nil
}
