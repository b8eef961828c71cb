package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// WriteError wraps a local write failure. Fatal to the act only.
type WriteError struct {
	Name string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write %s (%v)", e.Name, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// UploadError wraps a shared-drive upload failure. Fatal to the upload only -
// the local copy is never affected.
type UploadError struct {
	Name string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("unable to upload %s (%v)", e.Name, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// Save writes a rendered document under dir, creating the directory if
// absent. The document is written to a temp file and renamed into place so
// an interrupted run never leaves a partial file behind.
func Save(dir, name string, document []byte) (string, error) {
	if err := os.MkdirAll(dir, 0770); err != nil {
		return "", &WriteError{Name: name, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".act-*")
	if err != nil {
		return "", &WriteError{Name: name, Err: err}
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(document); err != nil {
		return "", &WriteError{Name: name, Err: err}
	}

	if err := tmp.Close(); err != nil {
		return "", &WriteError{Name: name, Err: err}
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", &WriteError{Name: name, Err: err}
	}

	return path, nil
}

// Upload stores the same bytes in the shared drive folder and returns the
// drive file id.
func Upload(ctx context.Context, gdrive *drive.Service, folder, name string, document []byte) (string, error) {
	metadata := drive.File{
		Name:     name,
		Parents:  []string{folder},
		MimeType: mimeDOCX,
	}

	file, err := gdrive.Files.Create(&metadata).
		Media(bytes.NewReader(document), googleapi.ContentType(mimeDOCX)).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", &UploadError{Name: name, Err: err}
	}

	return file.Id, nil
}
