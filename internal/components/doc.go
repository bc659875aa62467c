// Package components is the Bulma component catalog built on the options
// engine. Every component is a schema extending the abstract Component root;
// Build validates the supplied options and returns a renderable component.
package components
