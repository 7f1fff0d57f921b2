// Package watcher follows the server event stream and prints every change.
//
// The stream is reopened after failures, so the watcher survives server
// restarts. It can optionally exit as soon as the alarm sounds.
package watcher
