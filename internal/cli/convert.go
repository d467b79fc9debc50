package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/menusys/pkg/codec"
	"github.com/aretw0/menusys/pkg/ports"
	"github.com/aretw0/menusys/pkg/registry"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	Source string
	Target string
	From   codec.Format
	To     codec.Format
	Strict bool
	Store  ports.DocumentStore

	In  io.Reader
	Out io.Writer
}

// Convert rewrites the menu at Source into Target.
// Handler names are carried over without being resolved.
func Convert(ctx context.Context, opts ConvertOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	stdio := codec.WithStdio(opts.In, opts.Out)

	src := codec.New(opts.Source, registry.Placeholder{},
		append(codecOptions(opts.From, opts.Strict, opts.Store), stdio)...)
	root, err := src.Load(ctx)
	if err != nil {
		return err
	}

	dst := codec.New(opts.Target, nil,
		append(codecOptions(opts.To, opts.Strict, opts.Store), stdio)...)
	if err := dst.Save(ctx, root); err != nil {
		return fmt.Errorf("convert %s: %w", opts.Source, err)
	}
	return nil
}
