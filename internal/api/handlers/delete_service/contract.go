package delete_service

import "context"

type CatalogService interface {
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Error(format string, v ...interface{})
}
