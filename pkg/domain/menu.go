package domain

import "strings"

// EmptyMenuText is rendered in place of a Menu that has no choices.
const EmptyMenuText = "Please create some choices for this menu"

// Menu represents one level of a menu system.
type Menu struct {
	Title   string
	Prompt  string
	Choices []*Choice
}

// NewMenu creates a Menu that owns its own copy of the given choices.
func NewMenu(title, prompt string, choices ...*Choice) *Menu {
	owned := make([]*Choice, 0, len(choices))
	owned = append(owned, choices...)
	return &Menu{
		Title:   title,
		Prompt:  prompt,
		Choices: owned,
	}
}

// Add appends a choice and returns the Menu for chaining.
func (m *Menu) Add(c *Choice) *Menu {
	m.Choices = append(m.Choices, c)
	return m
}

// Render formats the menu screen:
//
//	TITLE
//
//	    choice 1
//	    choice n
//
//	PROMPT
func (m *Menu) Render() string {
	if m == nil || len(m.Choices) == 0 {
		return EmptyMenuText
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.Title)
	b.WriteString("\n\n")
	for _, c := range m.Choices {
		b.WriteString("\t")
		b.WriteString(c.Render())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.Prompt)
	return b.String()
}

// Lookup returns the Choice selected by token, or nil.
func (m *Menu) Lookup(token string) *Choice {
	if m == nil {
		return nil
	}
	for _, c := range m.Choices {
		if c.MatchesSelector(token) {
			return c
		}
	}
	return nil
}

// Walk visits m and every sub-menu below it, depth first in choice order.
// The path holds the selectors leading to each visited menu.
// Returning false from fn stops the walk.
func (m *Menu) Walk(fn func(path []string, menu *Menu) bool) {
	m.walk(nil, fn)
}

func (m *Menu) walk(path []string, fn func([]string, *Menu) bool) bool {
	if m == nil {
		return true
	}
	if !fn(path, m) {
		return false
	}
	for _, c := range m.Choices {
		if c == nil || c.SubMenu == nil {
			continue
		}
		next := append(append([]string(nil), path...), c.Selector)
		if !c.SubMenu.walk(next, fn) {
			return false
		}
	}
	return true
}
