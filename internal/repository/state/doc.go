// Package state implements persistence for the security controller state:
// the registered sensors, the alarm status and the arming status.
//
// Repository is the contract the engine depends on. MemoryRepository keeps
// everything in process, FileRepository stores a protojson snapshot on disk and
// SQLiteRepository uses an embedded SQLite database.
package state
