package catalog

import (
	"github.com/srkasse/backend/internal/domain/catalog"
)

// CodeMapService exposes the registry's tables for discovery endpoints.
// Everything here reads the immutable registry, so no method can fail and no
// locking is involved.
type CodeMapService struct {
	registry *catalog.Registry
}

// NewCodeMapService creates a new CodeMapService
func NewCodeMapService(registry *catalog.Registry) *CodeMapService {
	return &CodeMapService{registry: registry}
}

// Brands returns the ordered brand code map
func (s *CodeMapService) Brands() []CodeEntryResponse {
	return toCodeEntries(s.registry.Brands())
}

// Categories returns the ordered category code map with subcategories
func (s *CodeMapService) Categories() []CategoryEntryResponse {
	categories := s.registry.Categories()
	out := make([]CategoryEntryResponse, len(categories))
	for i, c := range categories {
		out[i] = CategoryEntryResponse{
			Code:          c.Code,
			Label:         c.Label,
			Numeric:       c.Numeric,
			Subcategories: toCodeEntries(c.Subcategories),
		}
	}
	return out
}

// Quantities returns the ordered quantity code map
func (s *CodeMapService) Quantities() []CodeEntryResponse {
	return toCodeEntries(s.registry.Quantities())
}

func toCodeEntries(entries []catalog.CodeMapEntry) []CodeEntryResponse {
	out := make([]CodeEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = CodeEntryResponse{
			Code:    e.Code,
			Label:   e.Label,
			Numeric: e.Numeric,
		}
	}
	return out
}
