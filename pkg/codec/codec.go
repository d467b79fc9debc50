package codec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/aretw0/menusys/pkg/domain"
	"github.com/aretw0/menusys/pkg/ports"
)

// Format selects the markup used on the wire.
type Format string

const (
	// FormatAuto picks YAML for .yaml/.yml locations and XML otherwise.
	FormatAuto Format = ""
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "xml":
		return FormatXML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("unknown format %q", name)
}

// Codec loads and saves one menu tree at one location.
type Codec struct {
	location string
	resolver domain.Resolver
	format   Format
	strict   bool

	reader io.Reader
	writer io.Writer
	stdin  io.Reader
	stdout io.Writer

	store  ports.DocumentStore
	client *http.Client
	logger *slog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithFormat forces the markup format instead of guessing it from the location.
func WithFormat(f Format) Option {
	return func(c *Codec) {
		c.format = f
	}
}

// WithStrict rejects unknown elements (and unknown YAML fields) instead of ignoring them.
func WithStrict(strict bool) Option {
	return func(c *Codec) {
		c.strict = strict
	}
}

// WithReader makes Load read from r. The codec does not close it.
func WithReader(r io.Reader) Option {
	return func(c *Codec) {
		c.reader = r
	}
}

// WithWriter makes Save write to w. The codec does not close it.
func WithWriter(w io.Writer) Option {
	return func(c *Codec) {
		c.writer = w
	}
}

// WithStdio overrides the streams used for the "-" location.
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(c *Codec) {
		c.stdin = in
		c.stdout = out
	}
}

// WithStore configures the DocumentStore behind store:// locations.
func WithStore(store ports.DocumentStore) Option {
	return func(c *Codec) {
		c.store = store
	}
}

// WithHTTPClient sets the client used for http(s) locations.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Codec) {
		c.client = client
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Codec for location. The resolver is queried only by Load.
func New(location string, resolver domain.Resolver, opts ...Option) *Codec {
	c := &Codec{
		location: location,
		resolver: resolver,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		client:   http.DefaultClient,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Location returns the configured location.
func (c *Codec) Location() string {
	return c.location
}

// Load reads the document at the configured location and rebuilds the tree.
// Handler names are resolved through the resolver; an unknown name aborts the
// load with an error matching domain.ErrNameResolution.
func (c *Codec) Load(ctx context.Context) (*domain.Menu, error) {
	rc, err := c.openRead(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var menu *domain.Menu
	switch c.resolveFormat() {
	case FormatYAML:
		menu, err = decodeYAML(rc, c.resolver, c.strict)
	default:
		menu, err = decodeXML(rc, c.resolver, c.strict)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu from %s: %w", c.describe(), err)
	}

	c.logger.Debug("menu loaded", "location", c.describe(), "title", menu.Title)
	return menu, nil
}

// Save serializes the tree to the configured location.
// When the location cannot be opened for writing, the failure is logged and
// an error matching ErrUnwritableTarget is returned.
func (c *Codec) Save(ctx context.Context, menu *domain.Menu) error {
	if menu == nil {
		return domain.ErrNoRootMenu
	}
	if err := checkHandlerNames(menu); err != nil {
		return err
	}

	var buf bytes.Buffer
	var err error
	switch c.resolveFormat() {
	case FormatYAML:
		err = encodeYAML(&buf, menu)
	default:
		err = encodeXML(&buf, menu)
	}
	if err != nil {
		return fmt.Errorf("failed to encode menu: %w", err)
	}

	wc, err := c.openWrite(ctx)
	if err != nil {
		c.logger.Warn("unable to output menu", "location", c.describe(), "err", err)
		return fmt.Errorf("%w: %w", ErrUnwritableTarget, err)
	}

	if _, err := wc.Write(buf.Bytes()); err != nil {
		_ = wc.Close()
		return fmt.Errorf("failed to write menu to %s: %w", c.describe(), err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to finish writing menu to %s: %w", c.describe(), err)
	}

	c.logger.Debug("menu saved", "location", c.describe(), "bytes", buf.Len())
	return nil
}

// checkHandlerNames rejects handlers that carry a function but no name.
func checkHandlerNames(root *domain.Menu) error {
	var err error
	root.Walk(func(path []string, menu *domain.Menu) bool {
		for _, c := range menu.Choices {
			if c != nil && c.Handler != nil && c.Handler.Name == "" && c.Handler.Fn != nil {
				err = fmt.Errorf("choice %s in menu %q: %w", c.Selector, menu.Title, ErrUnnamedHandler)
				return false
			}
		}
		return true
	})
	return err
}

func (c *Codec) resolveFormat() Format {
	if c.format != FormatAuto {
		return c.format
	}
	loc := c.location
	switch kindOf(loc) {
	case kindLiteral:
		return FormatXML
	case kindURL:
		if i := strings.IndexAny(loc, "?#"); i >= 0 {
			loc = loc[:i]
		}
	}
	switch strings.ToLower(path.Ext(loc)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatXML
}

func (c *Codec) describe() string {
	switch {
	case c.reader != nil || c.writer != nil:
		return "stream"
	case kindOf(c.location) == kindLiteral:
		return "literal document"
	}
	return c.location
}

var errEmptyLocation = errors.New("empty location")
