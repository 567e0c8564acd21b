package out

import (
	"fmt"
	"strings"

	catalogout "hazepito/internal/modules/catalog/port/out"
	"hazepito/internal/platform/clock"
	apperrors "hazepito/internal/platform/errors"
)

type WriterFactory struct {
	clock clock.Clock
}

func NewWriterFactory(clk clock.Clock) WriterFactory {
	return WriterFactory{clock: clk}
}

func (f WriterFactory) Writer(format, path string) (catalogout.ContentWriter, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: export path is required", apperrors.ErrInvalidInput)
	}
	switch format {
	case "sqlite":
		return NewSQLiteContentStore(path, f.clock), nil
	case "markdown":
		return NewMarkdownDirWriter(path), nil
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrInvalidInput, format)
	}
}
