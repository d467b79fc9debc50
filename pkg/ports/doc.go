/*
Package ports defines the driven ports (interfaces) of the menu system.

These interfaces decouple the core from external implementations, so the
navigation engine and the codecs work the same against memory, file or Redis
storage and against any front end.

# Key Interfaces

  - Navigator: the stateless navigation core (Start, Render, Navigate).
  - DocumentStore: persistence for serialized menu documents.
*/
package ports
