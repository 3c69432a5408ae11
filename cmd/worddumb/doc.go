// Command worddumb sends Word Wise and X-Ray companion databases to a
// connected Kindle, either over its mounted volume or through adb to the
// Kindle Android app.
package main
