package menusys

// Version is the library version reported by the CLI.
// It is overridden at build time with -ldflags "-X github.com/aretw0/menusys.Version=...".
var Version = "0.1.0-dev"
