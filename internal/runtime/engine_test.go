package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/menusys/internal/runtime"
	"github.com/aretw0/menusys/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHandler records handler invocations.
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Fn(ctx context.Context, value string) (domain.Signal, error) {
	args := m.Called(value)
	return args.Get(0).(domain.Signal), args.Error(1)
}

func (m *MockHandler) Handler(name string) *domain.Handler {
	return domain.NewHandler(name, m.Fn)
}

func TestEngine_Start_RequiresRoot(t *testing.T) {
	_, err := runtime.NewEngine().Start(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoRootMenu)
}

func TestEngine_ExitWithoutInvokingOthers(t *testing.T) {
	a := new(MockHandler)
	done := new(MockHandler)
	done.On("Fn", "2").Return(domain.Terminate, nil).Once()

	root := domain.NewMenu("Main", "> ",
		domain.NewChoice("1", "Do A", "1", a.Handler("a")),
		domain.NewChoice("2", "Exit", "2", done.Handler("done")),
	)

	engine := runtime.NewEngine()
	ctx := context.Background()

	state, err := engine.Start(ctx, root)
	require.NoError(t, err)

	state, err = engine.Navigate(ctx, state, "2\n")
	require.NoError(t, err)

	assert.True(t, state.Terminated)
	a.AssertNotCalled(t, "Fn", mock.Anything)
	done.AssertExpectations(t)

	_, terminal, err := engine.Render(ctx, state)
	require.NoError(t, err)
	assert.True(t, terminal)
}

func TestEngine_InvalidInputReprompts(t *testing.T) {
	root := domain.NewMenu("Main", "> ", domain.NewChoice("1", "Do A", "1", nil))

	var invalid []string
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnInvalidInput: func(ctx context.Context, e *domain.SelectEvent) {
			invalid = append(invalid, e.Selector)
		},
	}))
	ctx := context.Background()

	state, err := engine.Start(ctx, root)
	require.NoError(t, err)

	next, err := engine.Navigate(ctx, state, "  9 ")
	require.NoError(t, err)
	assert.Same(t, state, next)
	assert.Equal(t, []string{"9"}, invalid)

	text, terminal, err := engine.Render(ctx, next)
	require.NoError(t, err)
	assert.False(t, terminal)
	assert.Equal(t, root.Render(), text)
}

func TestEngine_HandlerRunsBeforeSubMenu(t *testing.T) {
	h := new(MockHandler)
	h.On("Fn", "four").Return(domain.Continue, nil).Once()
	subDone := new(MockHandler)
	subDone.On("Fn", "back").Return(domain.Terminate, nil).Once()

	sub := domain.NewMenu("Sub", "sub> ",
		domain.NewChoice("1", "Back", "back", subDone.Handler("done")),
	)
	root := domain.NewMenu("Main", "> ",
		domain.NewChoice("4", "Sub Menu", "four", h.Handler("H")).WithSubMenu(sub),
	)

	engine := runtime.NewEngine()
	ctx := context.Background()

	state, err := engine.Start(ctx, root)
	require.NoError(t, err)

	state, err = engine.Navigate(ctx, state, "4")
	require.NoError(t, err)
	h.AssertExpectations(t)
	assert.Equal(t, 2, state.Depth())
	assert.Same(t, sub, state.Current())

	state, err = engine.Navigate(ctx, state, "1")
	require.NoError(t, err)
	subDone.AssertExpectations(t)

	// Back at the parent, rendering its screen again.
	assert.False(t, state.Terminated)
	assert.Same(t, root, state.Current())
	text, _, err := engine.Render(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, root.Render(), text)
}

func TestEngine_TerminateSuppressesDescent(t *testing.T) {
	h := new(MockHandler)
	h.On("Fn", "x").Return(domain.Terminate, nil)

	sub := domain.NewMenu("Sub", "> ", domain.NewChoice("1", "One", "1", nil))
	root := domain.NewMenu("Main", "> ",
		domain.NewChoice("1", "Leave", "x", h.Handler("leave")).WithSubMenu(sub),
	)

	engine := runtime.NewEngine()
	state, err := engine.Start(context.Background(), root)
	require.NoError(t, err)

	state, err = engine.Navigate(context.Background(), state, "1")
	require.NoError(t, err)
	assert.True(t, state.Terminated)
}

func TestEngine_NoHandlerChoiceStays(t *testing.T) {
	root := domain.NewMenu("Main", "> ", domain.NewChoice("2", "Nothing", "2", nil))

	engine := runtime.NewEngine()
	state, err := engine.Start(context.Background(), root)
	require.NoError(t, err)

	next, err := engine.Navigate(context.Background(), state, "2")
	require.NoError(t, err)
	assert.Equal(t, 1, next.Depth())
	assert.False(t, next.Terminated)
}

func TestEngine_HandlerErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	h := new(MockHandler)
	h.On("Fn", "1").Return(domain.Continue, boom)

	root := domain.NewMenu("Main", "> ", domain.NewChoice("1", "Fail", "1", h.Handler("fail")))

	engine := runtime.NewEngine()
	state, err := engine.Start(context.Background(), root)
	require.NoError(t, err)

	next, err := engine.Navigate(context.Background(), state, "1")
	assert.ErrorIs(t, err, boom)
	assert.Same(t, state, next)
}

func TestEngine_NavigateAfterTermination(t *testing.T) {
	engine := runtime.NewEngine()
	_, err := engine.Navigate(context.Background(), &domain.State{Terminated: true}, "1")
	assert.ErrorIs(t, err, runtime.ErrTerminated)
}

func TestEngine_LifecycleHooks(t *testing.T) {
	sub := domain.NewMenu("Sub", "> ",
		domain.NewChoice("1", "Back", "1", domain.NewHandler("done", func(context.Context, string) (domain.Signal, error) {
			return domain.Terminate, nil
		})),
	)
	root := domain.NewMenu("Main", "> ", domain.NewChoice("1", "Enter", "1", nil).WithSubMenu(sub))

	var entered, left, selected []string
	hooks := domain.LifecycleHooks{
		OnMenuEnter: func(ctx context.Context, e *domain.MenuEvent) { entered = append(entered, e.Title) },
		OnMenuLeave: func(ctx context.Context, e *domain.MenuEvent) { left = append(left, e.Title) },
		OnSelect: func(ctx context.Context, e *domain.SelectEvent) {
			selected = append(selected, e.Title+":"+e.Selector+":"+e.Signal.String())
		},
	}

	engine := runtime.NewEngine(runtime.WithLifecycleHooks(hooks))
	ctx := context.Background()

	state, err := engine.Start(ctx, root)
	require.NoError(t, err)
	state, err = engine.Navigate(ctx, state, "1")
	require.NoError(t, err)
	_, err = engine.Navigate(ctx, state, "1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Main", "Sub"}, entered)
	assert.Equal(t, []string{"Sub"}, left)
	assert.Equal(t, []string{"Main:1:continue", "Sub:1:terminate"}, selected)
}
