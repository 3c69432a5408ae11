// Package sidecar places companion files into the per-book .sdr directory on a
// mounted Kindle volume.
package sidecar
