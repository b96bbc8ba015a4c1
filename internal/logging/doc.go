// Package logging provides a small structured logging facade over zerolog,
// with a stdlib-log fallback adapter for embedding contexts.
package logging
