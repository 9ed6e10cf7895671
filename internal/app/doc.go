// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the parse-and-render lifecycle, decoupled
// from any specific entrypoint like a CLI or an editor host.
package app
