// Package config loads the optional HCL settings file for the tool: which
// file extensions count as display-file source, log options, the watch
// debounce window, and an overridable default display size.
//
// Settings expressions can reference the standard geometries through the
// `display` variable, e.g. `default_size = display.ds4`.
package config
