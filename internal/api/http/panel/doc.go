// Package panel exposes the security engine as a JSON HTTP API for control panels.
package panel
