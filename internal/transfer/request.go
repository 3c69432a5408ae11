package transfer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format tags the book file format handed over by the host.
type Format string

const (
	FormatEPUB Format = "EPUB"
	FormatKFX  Format = "KFX"
	FormatAZW3 Format = "AZW3"
	FormatAZW  Format = "AZW"
	FormatMOBI Format = "MOBI"
)

// Metadata is the subset of the host's book metadata the transfer consults.
type Metadata struct {
	Title    string
	Language string
}

// Request identifies one book transfer. It is immutable for the duration of a
// transfer attempt, except for the metadata language which may be forced to
// English before a first-time upload.
type Request struct {
	BookID   int64
	ASIN     string
	BookPath string
	Meta     Metadata
	Format   Format
	ACR      string
}

// NewRequest builds a transfer request, defaulting the content reference to
// the placeholder used when the host has none.
func NewRequest(bookID int64, asin, bookPath string, meta Metadata, format Format, acr string) Request {
	if acr == "" {
		acr = "_"
	}
	return Request{
		BookID:   bookID,
		ASIN:     asin,
		BookPath: bookPath,
		Meta:     meta,
		Format:   format,
		ACR:      acr,
	}
}

// LookupPath is the local Word Wise lookup database generated for this book,
// present or absent independently of the book itself.
func (r Request) LookupPath() string {
	name := fmt.Sprintf("WordWise.en.%s.db", r.ASIN)
	return filepath.Join(filepath.Dir(r.BookPath), name)
}

// XRayPath is the local X-Ray cross-reference database for this book.
func (r Request) XRayPath() string {
	name := fmt.Sprintf("XRAY.%s.db", r.ASIN)
	return filepath.Join(filepath.Dir(r.BookPath), name)
}

// SafeACR returns the content reference with "!" characters replaced for use
// in shell-visible file names.
func (r Request) SafeACR() string {
	return strings.ReplaceAll(r.ACR, "!", "_")
}
