package dsl

import (
	"strconv"

	"github.com/aretw0/menusys/pkg/domain"
)

// MenuBuilder provides a fluent API for configuring a menu.
type MenuBuilder struct {
	menu    *domain.Menu
	parent  *ChoiceBuilder
	builder *Builder
}

// Choice appends a choice. Its value defaults to the selector, as when a
// document omits the value attribute.
func (m *MenuBuilder) Choice(selector int, description string) *ChoiceBuilder {
	sel := strconv.Itoa(selector)
	c := domain.NewChoice(sel, description, sel, nil)
	m.menu.Add(c)
	return &ChoiceBuilder{choice: c, menu: m}
}

// End returns to the choice that owns this sub-menu.
// On the root menu it returns nil.
func (m *MenuBuilder) End() *ChoiceBuilder {
	return m.parent
}

// Build compiles the whole tree, whichever level it is called on.
func (m *MenuBuilder) Build() (*domain.Menu, error) {
	return m.builder.Build()
}

// ChoiceBuilder provides a fluent API for configuring a choice.
type ChoiceBuilder struct {
	choice *domain.Choice
	menu   *MenuBuilder
}

// Value sets the value passed to the handler.
func (c *ChoiceBuilder) Value(value string) *ChoiceBuilder {
	c.choice.Value = value
	return c
}

// Handler binds a handler by name through the builder's resolver.
// The "None" token clears the handler.
func (c *ChoiceBuilder) Handler(name string) *ChoiceBuilder {
	if name == domain.NoHandlerName {
		c.choice.Handler = nil
		return c
	}
	b := c.menu.builder
	if b.resolver == nil {
		b.errs = append(b.errs, &domain.NameResolutionError{Name: name})
		return c
	}
	h, err := b.resolver.Resolve(name)
	if err != nil {
		b.errs = append(b.errs, err)
		return c
	}
	c.choice.Handler = h
	return c
}

// Handle attaches fn under name without consulting the resolver.
func (c *ChoiceBuilder) Handle(name string, fn domain.HandlerFunc) *ChoiceBuilder {
	c.choice.Handler = domain.NewHandler(name, fn)
	return c
}

// SubMenu attaches a new sub-menu and returns its builder.
func (c *ChoiceBuilder) SubMenu(title, prompt string) *MenuBuilder {
	sub := &MenuBuilder{menu: domain.NewMenu(title, prompt), parent: c, builder: c.menu.builder}
	c.choice.WithSubMenu(sub.menu)
	return sub
}

// Choice appends a sibling choice to the same menu.
func (c *ChoiceBuilder) Choice(selector int, description string) *ChoiceBuilder {
	return c.menu.Choice(selector, description)
}

// Up returns the builder of the menu that owns this choice.
func (c *ChoiceBuilder) Up() *MenuBuilder {
	return c.menu
}

// Build compiles the whole tree.
func (c *ChoiceBuilder) Build() (*domain.Menu, error) {
	return c.menu.builder.Build()
}
