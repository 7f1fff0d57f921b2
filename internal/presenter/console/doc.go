// Package console renders controller state as colored terminal output.
package console
