package codec_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/menusys/pkg/adapters/memory"
	"github.com/aretw0/menusys/pkg/codec"
	"github.com/aretw0/menusys/pkg/domain"
	"github.com/aretw0/menusys/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(ctx context.Context, value string) (domain.Signal, error) {
	return domain.Continue, nil
}

func done(ctx context.Context, value string) (domain.Signal, error) {
	return domain.Terminate, nil
}

func testResolver() registry.Map {
	return registry.Map{
		"print_ok":        noop,
		"print_bad":       noop,
		"submenu_handler": noop,
		"done":            done,
	}
}

func sampleTree() *domain.Menu {
	tools := domain.NewMenu("Tools", "Pick a tool:",
		domain.NewChoice("1", "Say bad", "bad", domain.NewHandler("print_bad", noop)),
		domain.NewChoice("9", "Back", "back", domain.NewHandler("done", done)),
	)
	return domain.NewMenu("Main Menu", "Choose an option:",
		domain.NewChoice("1", "Say OK", "ok", domain.NewHandler("print_ok", noop)),
		domain.NewChoice("2", "Tools", "tools", domain.NewHandler("submenu_handler", noop)).WithSubMenu(tools),
		domain.NewChoice("3", "Plain", "plain", nil),
		domain.NewChoice("9", "Exit", "exit", domain.NewHandler("done", done)),
	)
}

// assertSameTree compares structure and handler names; functions are not comparable.
func assertSameTree(t *testing.T, want, got *domain.Menu) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Prompt, got.Prompt)
	require.Len(t, got.Choices, len(want.Choices))
	for i, w := range want.Choices {
		g := got.Choices[i]
		assert.Equal(t, w.Selector, g.Selector)
		assert.Equal(t, w.Description, g.Description)
		assert.Equal(t, w.Value, g.Value)
		assert.Equal(t, w.HandlerName(), g.HandlerName())
		if w.Handler == nil {
			assert.Nil(t, g.Handler)
		} else {
			require.NotNil(t, g.Handler)
			assert.NotNil(t, g.Handler.Fn)
		}
		if w.SubMenu == nil {
			assert.Nil(t, g.SubMenu)
			continue
		}
		assertSameTree(t, w.SubMenu, g.SubMenu)
	}
}

func TestRoundTrip_File(t *testing.T) {
	for _, ext := range []string{".xml", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "menu"+ext)

			require.NoError(t, codec.New(path, nil).Save(ctx, sampleTree()))

			got, err := codec.New(path, testResolver()).Load(ctx)
			require.NoError(t, err)
			assertSameTree(t, sampleTree(), got)
		})
	}
}

func TestSave_XMLLayout(t *testing.T) {
	var buf bytes.Buffer
	menu := domain.NewMenu("Main", "Pick:",
		domain.NewChoice("1", "Leaf", "v", nil),
	)

	require.NoError(t, codec.New("", nil, codec.WithWriter(&buf)).Save(context.Background(), menu))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" ?>`+"\n"))
	assert.Contains(t, out, `<menu title="Main" prompt="Pick:">`)
	assert.Contains(t, out, "\n\t<choice ")
	assert.Contains(t, out, `handler="None"`)
}

func TestSave_UnnamedHandler(t *testing.T) {
	sub := domain.NewMenu("Sub", "?", domain.NewChoice("1", "anon", "v", domain.NewHandler("", noop)))
	menu := domain.NewMenu("Main", "Pick:",
		domain.NewChoice("1", "Tools", "t", nil).WithSubMenu(sub),
	)

	for _, format := range []codec.Format{codec.FormatXML, codec.FormatYAML} {
		var buf bytes.Buffer
		err := codec.New("", nil, codec.WithWriter(&buf), codec.WithFormat(format)).Save(context.Background(), menu)
		assert.ErrorIs(t, err, codec.ErrUnnamedHandler)
		assert.Empty(t, buf.String(), "nothing is written for %s", format)
	}

	// A nameless handler without a function carries no identity to lose.
	bare := domain.NewMenu("Main", "Pick:", domain.NewChoice("1", "a", "v", domain.NewHandler("", nil)))
	var buf bytes.Buffer
	require.NoError(t, codec.New("", nil, codec.WithWriter(&buf)).Save(context.Background(), bare))
	assert.Contains(t, buf.String(), `handler="None"`)
}

func TestSave_YAMLSelectorsAreNumbers(t *testing.T) {
	var buf bytes.Buffer
	menu := domain.NewMenu("Main", "Pick:", domain.NewChoice("7", "Leaf", "v", nil))

	err := codec.New("", nil, codec.WithWriter(&buf), codec.WithFormat(codec.FormatYAML)).
		Save(context.Background(), menu)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "selector: 7\n")
	assert.Contains(t, buf.String(), "handler: None\n")
}

func TestLoad_Fixture(t *testing.T) {
	menu, err := codec.New(filepath.Join("testdata", "sample.xml"), testResolver()).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Main Menu", menu.Title)
	require.Len(t, menu.Choices, 3)
	tools := menu.Lookup("2")
	require.NotNil(t, tools)
	require.NotNil(t, tools.SubMenu)
	assert.Equal(t, "Tools", tools.SubMenu.Title)
	assert.Equal(t, "done", tools.SubMenu.Lookup("9").HandlerName())
}

func TestLoad_HandlerNone(t *testing.T) {
	doc := `<menu title="T" prompt="P"><choice selector="1" description="d" value="v" handler="None"/></menu>`

	menu, err := codec.New(doc, registry.Map{}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, menu.Choices, 1)
	assert.Nil(t, menu.Choices[0].Handler)
}

func TestLoad_UnknownHandler(t *testing.T) {
	doc := `<menu title="T" prompt="P"><choice selector="1" description="d" value="v" handler="ghost"/></menu>`

	_, err := codec.New(doc, testResolver()).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNameResolution)

	var nameErr *domain.NameResolutionError
	require.True(t, errors.As(err, &nameErr))
	assert.Equal(t, "ghost", nameErr.Name)
}

func TestLoad_UnknownHandlerInYAML(t *testing.T) {
	doc := "title: T\nprompt: P\nchoices:\n  - selector: 1\n    description: d\n    handler: ghost\n"

	_, err := codec.New("", testResolver(), codec.WithReader(strings.NewReader(doc)), codec.WithFormat(codec.FormatYAML)).
		Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNameResolution)
}

func TestLoad_EmptyOrMissingHandler(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		doc := `<menu title="T" prompt="P"><choice selector="1" description="d" value="v" handler=""/></menu>`
		_, err := codec.New(doc, testResolver()).Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNameResolution)
	})

	t.Run("empty name with placeholder", func(t *testing.T) {
		doc := `<menu title="T" prompt="P"><choice selector="1" description="d" value="v" handler=""/></menu>`
		_, err := codec.New(doc, registry.Placeholder{}).Load(context.Background())
		assert.ErrorIs(t, err, domain.ErrNameResolution)
	})

	t.Run("missing attribute", func(t *testing.T) {
		doc := `<menu title="T" prompt="P"><choice selector="1" description="d" value="v"/></menu>`
		_, err := codec.New(doc, testResolver()).Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, codec.ErrMissingHandler)

		var decodeErr *codec.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "handler", decodeErr.Attr)
	})
}

func TestLoad_EmptyOrMissingHandlerInYAML(t *testing.T) {
	load := func(doc string) error {
		_, err := codec.New("", testResolver(), codec.WithReader(strings.NewReader(doc)), codec.WithFormat(codec.FormatYAML)).
			Load(context.Background())
		return err
	}

	err := load("title: T\nprompt: P\nchoices:\n  - selector: 1\n    description: d\n    handler: \"\"\n")
	assert.ErrorIs(t, err, domain.ErrNameResolution)

	err = load("title: T\nprompt: P\nchoices:\n  - selector: 1\n    description: d\n")
	assert.ErrorIs(t, err, codec.ErrMissingHandler)
	var decodeErr *codec.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "handler", decodeErr.Attr)
}

func TestLoad_MissingValueDefaultsToSelector(t *testing.T) {
	doc := `<menu title="T" prompt="P"><choice selector="04" description="d" handler="None"/></menu>`

	menu, err := codec.New(doc, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, menu.Choices, 1)
	assert.Equal(t, "4", menu.Choices[0].Selector)
	assert.Equal(t, "4", menu.Choices[0].Value)
}

func TestLoad_NonIntegerSelector(t *testing.T) {
	doc := `<menu title="T" prompt="P"><choice selector="a" description="d" value="v" handler="None"/></menu>`

	_, err := codec.New(doc, nil).Load(context.Background())
	var decodeErr *codec.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "selector", decodeErr.Attr)
}

func TestLoad_CaseInsensitiveTags(t *testing.T) {
	doc := `<MENU title="T" prompt="P">
	<Choice selector="1" description="d" value="v" handler="None">
		<Menu title="Sub" prompt="S"><CHOICE selector="1" description="x" value="y" handler="None"/></Menu>
		<menu title="Ignored" prompt="I"/>
	</Choice>
</MENU>`

	menu, err := codec.New(doc, nil, codec.WithStrict(true)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, menu.Choices, 1)
	require.NotNil(t, menu.Choices[0].SubMenu)
	assert.Equal(t, "Sub", menu.Choices[0].SubMenu.Title)
}

func TestLoad_UnknownContent(t *testing.T) {
	doc := `<menu title="T" prompt="P" color="red">
	<note>ignored</note>
	<choice selector="1" description="d" value="v" handler="None" extra="x"/>
</menu>`

	t.Run("lenient", func(t *testing.T) {
		menu, err := codec.New(doc, nil).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, menu.Choices, 1)
	})

	t.Run("strict", func(t *testing.T) {
		_, err := codec.New(doc, nil, codec.WithStrict(true)).Load(context.Background())
		assert.ErrorIs(t, err, codec.ErrUnknownElement)
	})

	t.Run("strict root", func(t *testing.T) {
		_, err := codec.New(`<screen title="T"/>`, nil, codec.WithStrict(true)).Load(context.Background())
		assert.ErrorIs(t, err, codec.ErrUnknownElement)
	})
}

func TestLoad_Malformed(t *testing.T) {
	_, err := codec.New(`<menu title="T"><choice`, nil).Load(context.Background())
	var decodeErr *codec.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestLoad_EmptyMenu(t *testing.T) {
	menu, err := codec.New(`<menu title="T" prompt="P"/>`, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, menu.Choices)
	assert.Equal(t, domain.EmptyMenuText, menu.Render())
}

func TestStdio(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	require.NoError(t, codec.New(codec.StdioLocation, nil, codec.WithStdio(nil, &out)).Save(ctx, sampleTree()))

	in := bytes.NewReader(out.Bytes())
	got, err := codec.New(codec.StdioLocation, testResolver(), codec.WithStdio(in, nil)).Load(ctx)
	require.NoError(t, err)
	assertSameTree(t, sampleTree(), got)
}

func TestStoreLocation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nil)
	loc := codec.StoreScheme + "main"

	require.NoError(t, codec.New(loc, nil, codec.WithStore(store)).Save(ctx, sampleTree()))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, names)

	got, err := codec.New(loc, testResolver(), codec.WithStore(store)).Load(ctx)
	require.NoError(t, err)
	assertSameTree(t, sampleTree(), got)

	_, err = codec.New(codec.StoreScheme+"missing", nil, codec.WithStore(store)).Load(ctx)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	_, err = codec.New(loc, nil).Load(ctx)
	assert.ErrorIs(t, err, codec.ErrNoStore)
}

func TestURLLocation(t *testing.T) {
	doc, err := os.ReadFile(filepath.Join("testdata", "sample.xml"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/menus/main" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write(doc)
	}))
	defer srv.Close()

	ctx := context.Background()
	menu, err := codec.New(srv.URL+"/menus/main", testResolver(), codec.WithHTTPClient(srv.Client())).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Main Menu", menu.Title)

	_, err = codec.New(srv.URL+"/menus/other", testResolver()).Load(ctx)
	assert.Error(t, err)

	err = codec.New(srv.URL+"/menus/main", nil).Save(ctx, menu)
	assert.ErrorIs(t, err, codec.ErrUnwritableTarget)
	assert.ErrorIs(t, err, codec.ErrReadOnlyLocation)
}

func TestSave_UnwritableTarget(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	target := filepath.Join(dir, "missing", "menu.xml")

	err := codec.New(target, nil).Save(ctx, sampleTree())
	assert.ErrorIs(t, err, codec.ErrUnwritableTarget)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))

	err = codec.New(`<menu/>`, nil).Save(ctx, sampleTree())
	assert.ErrorIs(t, err, codec.ErrReadOnlyLocation)
}

func TestSave_NilMenu(t *testing.T) {
	err := codec.New(filepath.Join(t.TempDir(), "m.xml"), nil).Save(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoRootMenu)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := codec.New(filepath.Join(t.TempDir(), "nope.xml"), nil).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want codec.Format
		err  bool
	}{
		{"", codec.FormatAuto, false},
		{"XML", codec.FormatXML, false},
		{"yml", codec.FormatYAML, false},
		{"json", codec.FormatAuto, true},
	}
	for _, tt := range tests {
		got, err := codec.ParseFormat(tt.in)
		if tt.err {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
