// Package device probes for reachable Kindle targets, either as a mounted USB
// volume or as the Kindle Android app behind an adb connection, and watches
// udev for Kindle attach events.
package device
