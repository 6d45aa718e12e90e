package fileutil

import (
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/lasvenus88/claim-filter/awsutil"
	"github.com/lasvenus88/claim-filter/errors"
)

// NewReader opens a local or remote path for reading. If the path looks like
// "s3://bucket/path/to/object" then this will read an object from S3. If it
// looks like an http(s) URL the body is fetched. Otherwise, this will read a
// path from the local filesystem.
func NewReader(path string) (io.ReadCloser, error) {
	if awsutil.IsS3URI(path) {
		return awsutil.NewS3Reader(path)
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		resp, err := http.Get(path)
		if err != nil {
			return nil, errors.WrapfOrNil(err, "error getting %s", path)
		}
		if resp.StatusCode != http.StatusOK {
			defer resp.Body.Close()
			io.Copy(ioutil.Discard, resp.Body)
			return nil, errors.Errorf("error getting %s: status code %d", path, resp.StatusCode)
		}
		return resp.Body, nil
	}

	return os.Open(path)
}

// SafeWriter is a destination that becomes visible only once Commit is
// called: Close without Commit leaves the destination untouched.
type SafeWriter interface {
	io.Writer
	// Name returns the destination path.
	Name() string
	// Commit makes the written contents visible at the destination,
	// replacing whatever was there.
	Commit() error
	// Close releases the underlying buffer. Safe to call after Commit.
	Close() error
}

// NewSafeWriter opens a local or remote path for writing. If the path starts
// with "s3://" the contents buffer locally and upload on Commit. Otherwise
// they go to a temp file next to the destination, renamed into place on
// Commit.
func NewSafeWriter(path string) (SafeWriter, error) {
	if awsutil.IsS3URI(path) {
		return awsutil.NewBufferedS3Writer(path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	f, err := ioutil.TempFile(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return nil, err
	}
	return &localSafeWriter{f: f, path: path}, nil
}

type localSafeWriter struct {
	f         *os.File
	path      string
	committed bool
}

func (w *localSafeWriter) Write(p []byte) (int, error) {
	return w.f.Write(p)
}

func (w *localSafeWriter) Name() string {
	return w.path
}

func (w *localSafeWriter) Commit() error {
	if w.committed {
		return nil
	}
	if err := w.f.Close(); err != nil {
		return err
	}
	if err := os.Rename(w.f.Name(), w.path); err != nil {
		return err
	}
	w.committed = true
	return nil
}

func (w *localSafeWriter) Close() error {
	if w.committed {
		return nil
	}
	err := w.f.Close()
	if rmErr := os.Remove(w.f.Name()); err == nil {
		err = rmErr
	}
	return err
}
