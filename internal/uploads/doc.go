// Package uploads persists bookkeeping for host upload jobs whose completion
// re-enters the transfer flow through a continuation.
package uploads
