/*
Package domain contains the core model of a menu system.

A menu system is a tree: a root Menu owns an ordered list of Choices, and any
Choice may own a sub-Menu. This package is kept pure and free of I/O; the
navigation engine, the codecs and the stores live elsewhere and operate on
these types.

# Key Entities

  - Menu: one navigable screen (title, choices, prompt).
  - Choice: a selectable entry with an optional Handler and sub-menu.
  - Handler: a named function invoked with the Choice value on selection.
  - Signal: the two-state result of a Handler (Continue or Terminate).
  - State: the stack of active menu levels driven by the engine.
*/
package domain
