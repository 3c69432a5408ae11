package transfer

import "context"

// Job is the handle the host's upload subsystem returns for an enqueued
// upload. The host marks it failed when its own worker could not place the
// book on the device.
type Job struct {
	ID     string
	Failed bool
	Detail string
}

// Host is the surface of the e-book manager this module consumes. The real
// application wires its device index, upload queue, and UI here; tests use
// fakes.
type Host interface {
	// BookOnDevice reports whether the book already exists on the connected
	// device, with its device-relative paths.
	BookOnDevice(bookID int64) (bool, []string, error)

	// UploadBooks enqueues a book upload and arranges for done to be invoked
	// with the finished job. The transfer re-enters through that continuation.
	UploadBooks(ctx context.Context, req Request, done func(*Job)) (*Job, error)

	// JobFailed delegates a failed upload job to the host's error reporting.
	JobFailed(job *Job)

	// BooksUploaded lets the host finalize its own bookkeeping for a job.
	BooksUploaded(job *Job)

	// ShowStatus renders a status message in the host UI.
	ShowStatus(message string)

	// UpdateThumbnail refreshes the host's cached cover thumbnail.
	UpdateThumbnail(meta Metadata)

	// UploadThumbnail re-pushes the cover thumbnail to the device.
	UploadThumbnail(meta Metadata, bookPath string)

	// RecomputeIdentification re-derives book identification metadata against
	// the on-device copy and reports whether the device ASIN was out of date.
	RecomputeIdentification(deviceBookPath string, format Format, meta *Metadata, asin string, setEnglish bool) (bool, error)
}
