package fetched

import (
	"model-storage/core/section"

	"go.uber.org/zap"
)

type options struct {
	logger    *zap.Logger
	nameKinds []string
}

// Option configures an Adapter or a Storage.
type Option func(*options)

// WithLogger sets the logger used to report protocol violations.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSectionNameKinds sets the supplementary kinds that resolve to the
// section name. The default is the table view and collection view header
// kinds from core/section.
func WithSectionNameKinds(kinds ...string) Option {
	return func(o *options) {
		o.nameKinds = kinds
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:    zap.NewNop(),
		nameKinds: []string{section.TableViewSectionHeader, section.CollectionViewSectionHeader},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
