// Package security implements the alarm decision engine.
//
// The Engine turns sensor activations, camera classifications and arming
// changes into alarm status transitions, stores the result in a state
// repository and notifies registered listeners synchronously. All engine
// operations are serialized, so transports may call it concurrently.
package security
