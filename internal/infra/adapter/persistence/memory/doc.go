// Package memory provides in-process implementations of the repository interfaces.
// Authors and magazines are indexed by ID; articles are read straight from the
// entity.Registry, which remains their only owner.
package memory
