package repository

import (
	"context"

	"streamhub/domain/model"
)

// MediaKind hints the asset store at the content being stored.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// IAssetStorage forwards locally staged binary assets to the external
// object store.
type IAssetStorage interface {
	// Upload stores the file at localPath and returns its durable
	// reference. The caller owns localPath cleanup.
	Upload(ctx context.Context, localPath string, kind MediaKind) (model.AssetRef, error)
	Delete(ctx context.Context, storageID string) error
}
