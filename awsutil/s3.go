package awsutil

import (
	"io"
	"io/ioutil"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/lasvenus88/claim-filter/envutil"
	"github.com/lasvenus88/claim-filter/errors"
)

var localRegion = envutil.GetenvDefault("AWS_REGION", "us-west-1")

// IsS3URI returns true if the path is an s3 uri.
func IsS3URI(path string) bool {
	return strings.HasPrefix(path, "s3://")
}

// ValidateURI checks whether the given uri points to S3.
func ValidateURI(uri string) (*url.URL, error) {
	s3url, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	if s3url.Scheme != "s3" {
		return nil, errors.Errorf("%s is not an s3 path", uri)
	}
	if s3url.Host == "" || strings.TrimPrefix(s3url.Path, "/") == "" {
		return nil, errors.Errorf("%s is missing a bucket or key", uri)
	}
	return s3url, nil
}

func newS3Client() (*s3.S3, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return s3.New(sess, aws.NewConfig().WithRegion(localRegion)), nil
}

// NewS3Reader returns an io.ReadCloser that will read the contents
// of the object pointed to by the uri. URI will be of the form
// s3://bucket-name/path/to/file
func NewS3Reader(uri string) (io.ReadCloser, error) {
	s3url, err := ValidateURI(uri)
	if err != nil {
		return nil, err
	}

	client, err := newS3Client()
	if err != nil {
		return nil, err
	}

	resp, err := client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s3url.Host),
		Key:    aws.String(strings.TrimPrefix(s3url.Path, "/")),
	})
	if err != nil {
		return nil, errors.WrapfOrNil(err, "error getting %s", uri)
	}
	return resp.Body, nil
}

// BufferedS3Writer writes to a local temp file and uploads to S3 on Commit.
// Close removes the temp file; it never uploads, so an uncommitted writer
// leaves nothing behind at the destination.
type BufferedS3Writer struct {
	f         *os.File
	s3uri     *url.URL
	committed bool
}

// NewBufferedS3Writer returns a writer buffering to disk that uploads to
// the given s3 uri when Commit is called. The temp file lives in the
// directory named by CLAIM_FILTER_S3TMP, or the system default.
func NewBufferedS3Writer(uri string) (*BufferedS3Writer, error) {
	s3url, err := ValidateURI(uri)
	if err != nil {
		return nil, err
	}

	f, err := ioutil.TempFile(envutil.GetenvDefault("CLAIM_FILTER_S3TMP", ""), "s3buffer")
	if err != nil {
		return nil, err
	}
	return &BufferedS3Writer{f: f, s3uri: s3url}, nil
}

func (w *BufferedS3Writer) Write(p []byte) (int, error) {
	return w.f.Write(p)
}

// Name returns the destination uri.
func (w *BufferedS3Writer) Name() string {
	return w.s3uri.String()
}

// Commit uploads the buffered contents to the destination object.
func (w *BufferedS3Writer) Commit() error {
	if w.committed {
		return nil
	}
	if _, err := w.f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	client, err := newS3Client()
	if err != nil {
		return err
	}

	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(w.s3uri.Host),
		Key:    aws.String(strings.TrimPrefix(w.s3uri.Path, "/")),
		Body:   w.f,
	})
	if err != nil {
		return errors.WrapfOrNil(err, "error putting %s", w.s3uri.String())
	}
	w.committed = true
	return nil
}

// Close removes the local buffer. Call Commit first to upload.
func (w *BufferedS3Writer) Close() error {
	err := w.f.Close()
	if rmErr := os.Remove(w.f.Name()); err == nil {
		err = rmErr
	}
	return err
}
