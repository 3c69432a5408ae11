// Package language maps book metadata language codes to the lemma languages
// used by the local dictionary data tree.
package language
