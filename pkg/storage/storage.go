// Package storage reads and writes whole objects addressed either by a
// plain filesystem path or by a gocloud.dev/blob URL (file://, gs://).
//
// A mem:// URL opens a fresh empty bucket on every call, so objects written
// through Create are lost once it returns. Hold a bucket and use CreateIn
// instead.
package storage

import (
	"context"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// IsURL reports whether loc names a blob URL rather than a local path
func IsURL(loc string) bool {
	return strings.Contains(loc, "://")
}

// Split breaks a blob URL into the URL of its bucket and the object key.
//
// For file:// URLs the bucket is the containing directory. For other
// schemes the bucket is scheme://host and the key is the remaining path;
// a URL with no path, such as mem://image.png, uses the host as the key.
func Split(loc string) (bucketURL, key string, err error) {
	u, err := url.Parse(loc)
	if err != nil {
		return "", "", errors.Wrapf(err, "storage: bad location %q", loc)
	}
	if u.Scheme == "" {
		return "", "", errors.Errorf("storage: %q is not a URL", loc)
	}

	query := ""
	if u.RawQuery != "" {
		query = "?" + u.RawQuery
	}

	if u.Scheme == fileblob.Scheme {
		dir, base := path.Split(u.Path)
		if base == "" {
			return "", "", errors.Errorf("storage: %q has no object name", loc)
		}
		return u.Scheme + "://" + u.Host + strings.TrimSuffix(dir, "/") + query, base, nil
	}

	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		if u.Host == "" {
			return "", "", errors.Errorf("storage: %q has no object name", loc)
		}
		return u.Scheme + "://" + query, u.Host, nil
	}
	return u.Scheme + "://" + u.Host + query, key, nil
}

// Open opens the bucket holding loc and returns it with the object key.
// The caller closes the bucket.
func Open(ctx context.Context, loc string) (*blob.Bucket, string, error) {
	return open(ctx, loc, false)
}

// open is Open that, when create is set, first makes the local directory
// holding loc
func open(ctx context.Context, loc string, create bool) (*blob.Bucket, string, error) {
	if !IsURL(loc) {
		abs, err := filepath.Abs(loc)
		if err != nil {
			return nil, "", errors.Wrapf(err, "storage: resolving %q", loc)
		}
		dir, key := filepath.Split(abs)
		if key == "" {
			return nil, "", errors.Errorf("storage: %q has no file name", loc)
		}
		if create {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, "", errors.Wrapf(err, "storage: creating %q", dir)
			}
		}
		bucket, err := fileblob.OpenBucket(dir, nil)
		if err != nil {
			return nil, "", errors.Wrapf(err, "storage: opening %q", dir)
		}
		return bucket, key, nil
	}

	bucketURL, key, err := Split(loc)
	if err != nil {
		return nil, "", err
	}
	if create {
		if err := makeFileBucketDir(bucketURL); err != nil {
			return nil, "", err
		}
	}
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, "", errors.Wrapf(err, "storage: opening bucket %q", bucketURL)
	}
	return bucket, key, nil
}

// makeFileBucketDir creates the directory behind a file:// bucket URL.
// Other schemes are left alone.
func makeFileBucketDir(bucketURL string) error {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return errors.Wrapf(err, "storage: bad bucket %q", bucketURL)
	}
	if u.Scheme != fileblob.Scheme {
		return nil
	}
	dir := filepath.FromSlash(u.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "storage: creating %q", dir)
	}
	return nil
}

// ReadFile returns the contents of the object at loc
func ReadFile(ctx context.Context, loc string) ([]byte, error) {
	bucket, key, err := Open(ctx, loc)
	if err != nil {
		return nil, err
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "storage: reading %q", loc)
	}
	return data, nil
}

// objectWriter closes the blob writer and then, if it owns one, its bucket
type objectWriter struct {
	*blob.Writer
	bucket *blob.Bucket
	loc    string
}

func (w *objectWriter) Close() error {
	err := w.Writer.Close()
	if w.bucket != nil {
		if cerr := w.bucket.Close(); err == nil {
			err = cerr
		}
	}
	return errors.Wrapf(err, "storage: writing %q", w.loc)
}

// Create opens the object at loc for writing. The object is committed when
// the returned writer is closed. Missing local directories are created.
func Create(ctx context.Context, loc, contentType string) (io.WriteCloser, error) {
	bucket, key, err := open(ctx, loc, true)
	if err != nil {
		return nil, err
	}
	w, err := bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		bucket.Close()
		return nil, errors.Wrapf(err, "storage: creating %q", loc)
	}
	return &objectWriter{Writer: w, bucket: bucket, loc: loc}, nil
}

// CreateIn opens key for writing in a bucket the caller keeps open
func CreateIn(ctx context.Context, bucket *blob.Bucket, key, contentType string) (io.WriteCloser, error) {
	w, err := bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "storage: creating %q", key)
	}
	return &objectWriter{Writer: w, loc: key}, nil
}
