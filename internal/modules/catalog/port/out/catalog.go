package out

import (
	"context"

	"hazepito/internal/modules/catalog/domain"
)

// ContentSource yields the primary content pack (embedded, directory or db).
type ContentSource interface {
	Name() string
	Load(ctx context.Context) (domain.Pack, error)
}

// TopicProvider supplies extra topics appended after the primary pack.
type TopicProvider interface {
	Name() string
	Topics(ctx context.Context) ([]domain.Topic, error)
}

type ContentWriter interface {
	Write(ctx context.Context, pack domain.Pack) error
}

type WriterFactory interface {
	Writer(format, path string) (ContentWriter, error)
}
