package domain

import "fmt"

// UnreadyChoiceText is rendered in place of a Choice that lacks a selector or description.
const UnreadyChoiceText = "Menu needs to be defined before it can be printed."

// SubMenuMarker is appended to the rendered line of a Choice that owns a sub-menu.
const SubMenuMarker = " **"

// Choice represents one selectable entry of a Menu.
type Choice struct {
	// Selector is the token a user types to pick this entry.
	// It is compared as text, even when it looks numeric.
	Selector string

	// Description is the text shown next to the selector.
	Description string

	// Value is passed verbatim to the Handler.
	Value string

	// Handler is invoked on selection. Nil means no action.
	Handler *Handler

	// SubMenu is entered after the Handler runs. Nil means a leaf choice.
	SubMenu *Menu
}

// NewChoice creates a leaf Choice.
func NewChoice(selector, description, value string, handler *Handler) *Choice {
	return &Choice{
		Selector:    selector,
		Description: description,
		Value:       value,
		Handler:     handler,
	}
}

// WithSubMenu attaches a sub-menu and returns the Choice for chaining.
func (c *Choice) WithSubMenu(sub *Menu) *Choice {
	c.SubMenu = sub
	return c
}

// Render formats the Choice as "<selector>.) <description>", marking branches.
// A Choice without selector or description renders UnreadyChoiceText.
func (c *Choice) Render() string {
	if c == nil || c.Selector == "" || c.Description == "" {
		return UnreadyChoiceText
	}
	if c.SubMenu == nil {
		return fmt.Sprintf("%s.) %s", c.Selector, c.Description)
	}
	return fmt.Sprintf("%s.) %s%s", c.Selector, c.Description, SubMenuMarker)
}

// MatchesSelector reports whether token selects this Choice.
func (c *Choice) MatchesSelector(token string) bool {
	return c != nil && token == c.Selector
}

// HandlerName returns the declared handler name, or NoHandlerName when absent.
func (c *Choice) HandlerName() string {
	if c.Handler == nil || c.Handler.Name == "" {
		return NoHandlerName
	}
	return c.Handler.Name
}
