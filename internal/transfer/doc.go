// Package transfer orchestrates moving a book's companion files (Word Wise
// lookup and X-Ray databases) onto a connected Kindle, over a mounted volume
// or through adb to the Kindle Android app.
//
// The host e-book manager stays in charge of uploading the book itself; this
// package re-enters through the continuation passed to the host's upload
// queue once that job completes. A companion file that reaches the device is
// always deleted locally, so no state is duplicated between source and device.
package transfer
