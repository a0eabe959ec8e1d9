package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type optionsBuilder struct {
	options []*Options
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		options: make([]*Options, 0, 3),
	}
}

func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building options: %w", b.err)
	}

	options := new(Options)
	for _, opts := range b.options {
		if err := mergo.Merge(options, opts); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	if err := options.validate(); err != nil {
		return nil, err
	}

	return options, nil
}

func (b *optionsBuilder) withFlags(args []string) *optionsBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.options = append(b.options, flags)
	return b
}

func (b *optionsBuilder) withEnv(snapshot Environment) *optionsBuilder {
	envOpts := &Options{}
	if err := parseOptionsEnv(envOpts, snapshot); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.options = append(b.options, envOpts)
	return b
}

func (b *optionsBuilder) withDefaults() *optionsBuilder {
	b.options = append(b.options, defaultOptions())
	return b
}
