package interfaces

import "context"

// CoverImageChecker reports whether an uploaded cover image exists in storage.
type CoverImageChecker interface {
	Exists(ctx context.Context, fileKey string) (bool, error)
}
