package out

import "context"

// ImageProbe reports whether url currently serves an image.
type ImageProbe interface {
	Probe(ctx context.Context, url string) error
}

type ExternalLauncher interface {
	Open(ctx context.Context, target string) error
}
