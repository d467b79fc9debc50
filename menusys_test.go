package menusys_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/menusys"
	"github.com/aretw0/menusys/pkg/codec"
	"github.com/aretw0/menusys/pkg/domain"
	"github.com/aretw0/menusys/pkg/registry"
	"github.com/aretw0/menusys/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoRegistry(out *bytes.Buffer) *registry.Registry {
	reg := registry.NewRegistry()
	reg.Register("print_ok", func(ctx context.Context, value string) (domain.Signal, error) {
		out.WriteString("OK: " + value + "\n")
		return domain.Continue, nil
	})
	reg.Register("done", func(ctx context.Context, value string) (domain.Signal, error) {
		return domain.Terminate, nil
	})
	return reg
}

func TestFacade_SaveLoadRun(t *testing.T) {
	var handlerOut bytes.Buffer
	reg := demoRegistry(&handlerOut)
	okHandler, err := reg.Resolve("print_ok")
	require.NoError(t, err)
	doneHandler, err := reg.Resolve("done")
	require.NoError(t, err)

	sub := domain.NewMenu("Sub", "Sub>",
		domain.NewChoice("1", "OK", "sub", okHandler),
		domain.NewChoice("2", "Back", "2", doneHandler),
	)
	root := domain.NewMenu("Main", "Main>",
		domain.NewChoice("1", "Enter", "main", nil).WithSubMenu(sub),
		domain.NewChoice("2", "Exit", "2", doneHandler),
	)

	eng, err := menusys.New("", menusys.WithMenu(root))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "menu.xml")
	require.NoError(t, eng.Save(context.Background(), path))

	loaded, err := menusys.New(path, menusys.WithResolver(reg))
	require.NoError(t, err)
	assert.Equal(t, "Main", loaded.Menu().Title)

	var screen bytes.Buffer
	err = loaded.Run(context.Background(), runner.WithIO(strings.NewReader("1\n1\n2\n2\n"), &screen))
	require.NoError(t, err)

	assert.Equal(t, "OK: sub\n", handlerOut.String())
	assert.Contains(t, screen.String(), "\t1.) Enter **\n")
}

func TestFacade_New_RequiresLocation(t *testing.T) {
	_, err := menusys.New("")
	assert.Error(t, err)
}

func TestFacade_New_UnknownHandler(t *testing.T) {
	doc := `<menu title="T" prompt="P"><choice selector="1" description="d" value="v" handler="missing"/></menu>`
	_, err := menusys.New(doc, menusys.WithResolver(registry.NewRegistry()))
	assert.ErrorIs(t, err, domain.ErrNameResolution)
}

func TestFacade_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	write := func(title string) {
		doc := "title: " + title + "\nprompt: P\nchoices:\n  - selector: 1\n    description: d\n    handler: None\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	}

	write("First")
	eng, err := menusys.New(path, menusys.WithCodecOptions(codec.WithStrict(true)))
	require.NoError(t, err)
	assert.Equal(t, "First", eng.Menu().Title)

	write("Second")
	require.NoError(t, eng.Reload(context.Background()))
	assert.Equal(t, "Second", eng.Menu().Title)
}

func TestFacade_Hooks(t *testing.T) {
	var entered []string
	root := domain.NewMenu("Main", "P", domain.NewChoice("1", "Exit", "1", domain.NewHandler("done", func(ctx context.Context, value string) (domain.Signal, error) {
		return domain.Terminate, nil
	})))

	eng, err := menusys.New("", menusys.WithMenu(root), menusys.WithLifecycleHooks(domain.LifecycleHooks{
		OnMenuEnter: func(ctx context.Context, e *domain.MenuEvent) {
			entered = append(entered, e.Title)
		},
	}))
	require.NoError(t, err)

	ctx := context.Background()
	state, err := eng.Start(ctx)
	require.NoError(t, err)
	state, err = eng.Navigate(ctx, state, "1")
	require.NoError(t, err)

	assert.True(t, state.Terminated)
	assert.Equal(t, []string{"Main"}, entered)
}
