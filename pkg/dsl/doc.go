/*
Package dsl provides a fluent builder for constructing menu trees in Go code.

It is the programmatic counterpart of the XML and YAML documents read by
package codec: the same tree, with handlers bound by name through a resolver
or attached directly.

Example usage:

	reg := registry.NewRegistry()
	reg.Register("print_ok", printOK)
	reg.Register("done", done)

	root, err := dsl.New("Main Menu", "Choose an option:", reg).
		Choice(1, "Say OK").Handler("print_ok").
		Choice(2, "Tools").
		SubMenu("Tools", "Pick a tool:").
		Choice(9, "Back").Handler("done").
		Up().End().
		Choice(9, "Exit").Handler("done").
		Build()
*/
package dsl
