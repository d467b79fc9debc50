package codec

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/menusys/pkg/domain"
	"gopkg.in/yaml.v3"
)

type yamlMenu struct {
	Title   string       `yaml:"title"`
	Prompt  string       `yaml:"prompt"`
	Choices []yamlChoice `yaml:"choices"`
}

type yamlChoice struct {
	Selector    selectorText `yaml:"selector"`
	Description string       `yaml:"description"`
	Value       *string      `yaml:"value,omitempty"`
	Handler     *string      `yaml:"handler"`
	Menu        *yamlMenu    `yaml:"menu,omitempty"`
}

// selectorText keeps selectors textual in memory but writes numeric ones unquoted.
type selectorText string

func (s selectorText) MarshalYAML() (any, error) {
	if n, err := strconv.Atoi(string(s)); err == nil {
		return n, nil
	}
	return string(s), nil
}

func encodeYAML(w io.Writer, menu *domain.Menu) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toYAML(menu)); err != nil {
		return err
	}
	return enc.Close()
}

func toYAML(menu *domain.Menu) *yamlMenu {
	doc := &yamlMenu{Title: menu.Title, Prompt: menu.Prompt}
	for _, c := range menu.Choices {
		if c == nil {
			continue
		}
		value := c.Value
		handler := c.HandlerName()
		yc := yamlChoice{
			Selector:    selectorText(c.Selector),
			Description: c.Description,
			Value:       &value,
			Handler:     &handler,
		}
		if c.SubMenu != nil {
			yc.Menu = toYAML(c.SubMenu)
		}
		doc.Choices = append(doc.Choices, yc)
	}
	return doc
}

func decodeYAML(r io.Reader, resolver domain.Resolver, strict bool) (*domain.Menu, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(strict)

	var doc yamlMenu
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("document is empty")
		}
		return nil, &DecodeError{Element: tagMenu, Err: err}
	}
	return fromYAML(&doc, resolver)
}

func fromYAML(doc *yamlMenu, resolver domain.Resolver) (*domain.Menu, error) {
	menu := domain.NewMenu(doc.Title, doc.Prompt)
	for _, yc := range doc.Choices {
		raw := string(yc.Selector)
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, &DecodeError{Element: tagChoice, Attr: "selector", Err: fmt.Errorf("selector %q is not an integer", raw)}
		}
		selector := strconv.Itoa(n)

		value := selector
		if yc.Value != nil {
			value = *yc.Value
		}

		if yc.Handler == nil {
			return nil, &DecodeError{Element: tagChoice, Attr: "handler", Err: ErrMissingHandler}
		}
		handler, err := resolveHandler(resolver, *yc.Handler)
		if err != nil {
			return nil, fmt.Errorf("choice %s: %w", selector, err)
		}

		choice := domain.NewChoice(selector, yc.Description, value, handler)
		if yc.Menu != nil {
			sub, err := fromYAML(yc.Menu, resolver)
			if err != nil {
				return nil, err
			}
			choice.SubMenu = sub
		}
		menu.Add(choice)
	}
	return menu, nil
}
