package codegen

import (
	"net/http"

	"github.com/goliatone/go-recgen/pkg/orchestrator"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath     string
	FormatParam   string
	TitleParam    string
	DefaultFormat string
	MaxBodyBytes  int64
	Guard         GuardFunc

	Generator *orchestrator.Orchestrator
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:     "/api/codegen",
		FormatParam:   "format",
		TitleParam:    "title",
		DefaultFormat: "script",
		MaxBodyBytes:  1 << 20,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/codegen"
	}
	if opts.FormatParam == "" {
		opts.FormatParam = "format"
	}
	if opts.TitleParam == "" {
		opts.TitleParam = "title"
	}
	if opts.DefaultFormat == "" {
		opts.DefaultFormat = "script"
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithFormatParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FormatParam = name
	}
}

func WithTitleParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.TitleParam = name
	}
}

func WithDefaultFormat(format string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultFormat = format
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithGenerator(generator *orchestrator.Orchestrator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Generator = generator
	}
}
