package persistence

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"streamhub/domain/apperror"
)

// classify maps store errors to the application taxonomy at the adapter
// boundary so raw driver messages never reach a client.
func classify(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperror.Wrap(apperror.NotFound, resource+" not found", err)
	case mongo.IsDuplicateKeyError(err):
		return apperror.Wrap(apperror.Conflict, resource+" already exists", err)
	default:
		return apperror.Wrap(apperror.Internal, "Internal server error", err)
	}
}
