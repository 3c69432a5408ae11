// Package adb wraps the Android Debug Bridge CLI used to reach the Kindle app
// on Android devices.
//
// The client shells out to the adb binary and treats a non-zero exit as the
// sole failure signal, carrying the captured standard error up to the caller.
// Privileged operations (copying into app-private storage, mirroring ownership
// and security labels) are composed through a typed command builder so the
// exact su invocations stay testable without a device attached.
package adb
