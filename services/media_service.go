// Package services: services/media_service.go
package services

import (
	"sync"

	"academy-admin/models"
)

// MediaService owns the media gallery albums.
type MediaService struct {
	mu     sync.Mutex
	albums []models.MediaAlbum
}

// NewMediaService creates the store with the sample gallery.
func NewMediaService() *MediaService {
	return &MediaService{albums: seedAlbums()}
}

func seedAlbums() []models.MediaAlbum {
	return []models.MediaAlbum{
		{ID: "1", Title: "U20 Cup Win vs Lions FC", Category: "U20", Kind: "match", Date: "2024-01-20", ItemCount: 48},
		{ID: "2", Title: "U15 Tactical Session", Category: "U15", Kind: "training", Date: "2024-01-18", ItemCount: 22},
		{ID: "3", Title: "U12 Talent Search Day", Category: "U12", Kind: "event", Date: "2024-01-28", ItemCount: 65},
		{ID: "4", Title: "U9 Saturday Skills", Category: "U9", Kind: "training", Date: "2024-01-13", ItemCount: 17},
	}
}

// Filter returns albums passing the category filter.
func (s *MediaService) Filter(f models.ListFilter) []models.MediaAlbum {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.MediaAlbum
	for _, a := range s.albums {
		if f.CategoryMatches(a.Category) {
			out = append(out, a)
		}
	}
	return out
}
