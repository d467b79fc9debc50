/*
Package menusys builds and drives hierarchical, text-based interactive menus.

A tree of menu screens is described in memory (domain.Menu, domain.Choice) or
in markup (XML or YAML, see package codec). Each choice may run a handler,
descend into a sub-menu, or return to the parent level when its handler
answers domain.Terminate. Handler names in markup are bound late through a
domain.Resolver such as registry.Registry.

# Usage

	reg := registry.NewRegistry()
	reg.Register("print_ok", func(ctx context.Context, value string) (domain.Signal, error) {
		fmt.Println("OK:", value)
		return domain.Continue, nil
	})
	reg.Register("done", func(ctx context.Context, value string) (domain.Signal, error) {
		return domain.Terminate, nil
	})

	eng, err := menusys.New("menu.xml", menusys.WithResolver(reg))
	if err != nil {
		log.Fatal(err)
	}

	// Interactive loop on stdin/stdout
	if err := eng.Run(ctx); err != nil {
		log.Fatal(err)
	}

The stateless API (Start, Render, Navigate) is available for hosts that own
the IO loop themselves.
*/
package menusys
