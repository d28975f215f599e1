package lifecycle

import "fmt"

// ErrNoUpload indicates the request carried no file payload.
type ErrNoUpload struct{}

func (e *ErrNoUpload) Error() string {
	return "no resume file provided"
}

// ErrEmptyFilename indicates the uploaded file had no usable name.
type ErrEmptyFilename struct{}

func (e *ErrEmptyFilename) Error() string {
	return "no selected file"
}

// ErrTempFileMissing indicates the temp upload expected at confirmation time
// is gone. This is fatal for the confirmation: nothing is written.
type ErrTempFileMissing struct {
	Name string
}

func (e *ErrTempFileMissing) Error() string {
	return fmt.Sprintf("temporary resume file not found on server: %s", e.Name)
}

// ErrFileNotFound indicates a saved file lookup failed, either because the
// name did not sanitize to anything usable or because the file is absent.
type ErrFileNotFound struct {
	Name string
}

func (e *ErrFileNotFound) Error() string {
	return fmt.Sprintf("file not found: %s", e.Name)
}
