package vfs

import (
	"log/slog"

	"github.com/jmgilman/vfs/errors"
)

// Option configures a Vfs.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	vendored VendoredStore
	shards   int
}

func defaultOptions() options {
	return options{
		logger:   slog.New(slog.DiscardHandler),
		vendored: EmptyVendoredBundle(),
		shards:   defaultShards,
	}
}

// WithLogger sets the logger used for debug records of resolutions,
// absorbed backend failures and change application. Defaults to a
// logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithVendored sets the vendored store, typically a *VendoredBundle.
// Defaults to an empty bundle.
func WithVendored(store VendoredStore) Option {
	return func(o *options) {
		if store != nil {
			o.vendored = store
		}
	}
}

// WithShards sets the number of lock stripes of the identity map.
// n must be a positive power of two.
func WithShards(n int) Option {
	return func(o *options) {
		o.shards = n
	}
}

func (o options) validate() error {
	if o.shards <= 0 || o.shards&(o.shards-1) != 0 {
		return errors.WithContext(
			errors.New(errors.CodeInvalidConfig, "shard count must be a positive power of two"),
			"shards", o.shards,
		)
	}
	return nil
}
