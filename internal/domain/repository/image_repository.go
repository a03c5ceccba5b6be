package repository

import "context"

// ImageRepository searches stock photos and returns their display URLs
type ImageRepository interface {
	SearchPhotos(ctx context.Context, query string) ([]string, error)
}
