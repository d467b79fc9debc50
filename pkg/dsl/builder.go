package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/menusys/internal/validator"
	"github.com/aretw0/menusys/pkg/domain"
)

// Builder manages the tree construction.
type Builder struct {
	root     *MenuBuilder
	resolver domain.Resolver
	errs     []error
}

// New creates a builder whose root menu has the given title and prompt.
// The resolver binds the names passed to ChoiceBuilder.Handler; it may be nil
// when only Handle is used.
func New(title, prompt string, resolver domain.Resolver) *MenuBuilder {
	b := &Builder{resolver: resolver}
	b.root = &MenuBuilder{menu: domain.NewMenu(title, prompt), builder: b}
	return b.root
}

// Build returns the root menu once the tree passes structural validation.
// Errors collected while chaining (unknown handler names) are reported together.
func (b *Builder) Build() (*domain.Menu, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("failed to build menu: %w", errors.Join(b.errs...))
	}
	if err := validator.ValidateMenu(b.root.menu); err != nil {
		return nil, err
	}
	return b.root.menu, nil
}
