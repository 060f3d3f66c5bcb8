// Package model defines domain data structures used across the app: probed
// media items and collections, download requests, terminal outcomes, tasks and
// status enums. Structures are plain values so the UI and the HTTP API can
// render them directly.
package model
