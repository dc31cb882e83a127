// Package watch notifies the vquery CLI when fixture files change.
//
// Parent directories are watched instead of the files themselves so that
// editors that save by renaming a temporary file are still observed. Bursts
// of events are coalesced with a debounce delay.
package watch
