/*
Package codec persists menu trees as markup and rebuilds them.

The primary format is XML:

	<menu title="..." prompt="...">
		<choice selector="1" description="..." value="..." handler="NAME|None">
			<menu ...> ... </menu>
		</choice>
	</menu>

A choice that contains a nested menu element owns that menu as its sub-menu.
Handler names are written from domain.Handler.Name and resolved back through a
domain.Resolver while decoding; "None" means no handler. The same tree can also
be stored as YAML.

A Codec is bound to one location, which can be a local path, "-" for the
standard streams, an http(s) URL (load only), a "store://name" document in a
ports.DocumentStore, or a literal XML string (load only). Explicit streams can
be injected with WithReader and WithWriter.

	c := codec.New("menus/main.xml", reg)
	root, err := c.Load(ctx)
*/
package codec
