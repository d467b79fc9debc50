package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/menusys/pkg/domain"
)

// Issue is one structural problem found in a menu tree.
type Issue struct {
	// Path locates the menu: "/" for the root, "/2/1" for the sub-menu
	// reached through selector 2 then selector 1.
	Path    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

type visit struct {
	path []string
	menu *domain.Menu
}

// Inspect crawls the tree breadth first and reports every structural issue:
// empty menus, unrenderable choices, duplicate selectors and menus reached twice.
func Inspect(root *domain.Menu) []Issue {
	if root == nil {
		return []Issue{{Path: "/", Message: "root menu is missing"}}
	}

	var issues []Issue
	visited := make(map[*domain.Menu]string)
	queue := []visit{{menu: root}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		path := "/" + strings.Join(current.path, "/")

		if first, seen := visited[current.menu]; seen {
			issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("menu %q is already attached at %s", current.menu.Title, first)})
			continue
		}
		visited[current.menu] = path

		if len(current.menu.Choices) == 0 {
			issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("menu %q has no choices", current.menu.Title)})
			continue
		}

		selectors := make(map[string]bool, len(current.menu.Choices))
		for i, c := range current.menu.Choices {
			if c == nil {
				issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("choice #%d is nil", i+1)})
				continue
			}
			if c.Selector == "" || c.Description == "" {
				issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("choice #%d needs both a selector and a description", i+1)})
			}
			if c.Selector != "" {
				if selectors[c.Selector] {
					issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("duplicate selector %q", c.Selector)})
				}
				selectors[c.Selector] = true
			}
			if c.SubMenu != nil {
				next := append(append([]string(nil), current.path...), c.Selector)
				queue = append(queue, visit{path: next, menu: c.SubMenu})
			}
		}
	}

	return issues
}

// ValidateMenu returns an error listing every issue found by Inspect, or nil.
func ValidateMenu(root *domain.Menu) error {
	issues := Inspect(root)
	if len(issues) == 0 {
		return nil
	}

	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = issue.String()
	}
	return fmt.Errorf("found %d errors:\n- %s", len(issues), strings.Join(lines, "\n- "))
}
