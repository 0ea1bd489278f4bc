// Package entity defines the core domain entities and validation logic for the application.
// It contains Author, Magazine and Article, the Registry that owns every article,
// the field validation rules and the domain-specific errors.
//
// Relationships are never stored on Author or Magazine. They are derived on
// demand by scanning the Registry, so every query reflects the current state.
package entity
