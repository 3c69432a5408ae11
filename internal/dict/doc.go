// Package dict provisions Word Wise dictionary files onto Kindle devices and
// exports them back for reuse.
//
// The dictionary pushed to a device is selected solely by the book's language
// code; a language missing from the table and a user preference for the
// device's built-in dictionary are both silent no-ops, not errors.
package dict
