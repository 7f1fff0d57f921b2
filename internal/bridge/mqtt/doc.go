// Package mqtt connects the security engine to an MQTT broker.
//
// Field devices report sensor changes on <prefix>/sensor/<id>/set with a
// {"active": bool} payload. The bridge publishes the alarm status and camera
// results as retained messages so new subscribers see the current state.
package mqtt
