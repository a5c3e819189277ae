// Package fetch reads whole documents from local paths or bucket URLs,
// with transparent gzip/zstd decompression by file extension.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// driver
	_ "gocloud.dev/blob/gcsblob"  // GCS driver
	_ "gocloud.dev/blob/s3blob"   // S3 driver
)

// IsRemote reports whether src is a bucket URL rather than a local path.
func IsRemote(src string) bool {
	return strings.HasPrefix(src, "gs://") ||
		strings.HasPrefix(src, "s3://") ||
		strings.HasPrefix(src, "file://")
}

// ReadAll returns the decompressed contents of a local file or remote
// object.
func ReadAll(ctx context.Context, src string) ([]byte, error) {
	var data []byte
	var err error

	if IsRemote(src) {
		data, err = readRemote(ctx, src)
	} else {
		data, err = os.ReadFile(src)
		if err != nil {
			err = fmt.Errorf("read %s: %w", src, err)
		}
	}
	if err != nil {
		return nil, err
	}

	return decompress(src, data)
}

// readRemote reads a whole object through gocloud.dev. For gs:// and
// s3:// the URL splits into bucket and key at the first slash after
// the bucket name; for file:// the bucket is the directory and the
// key its basename.
func readRemote(ctx context.Context, url string) ([]byte, error) {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return nil, fmt.Errorf("invalid remote URL %q", url)
	}

	var bucketName, key string
	if scheme == "file" {
		i := strings.LastIndex(rest, "/")
		if i < 0 || i == len(rest)-1 {
			return nil, fmt.Errorf("remote URL %q has no object key", url)
		}
		bucketName, key = rest[:i], rest[i+1:]
	} else {
		bucketName, key, ok = strings.Cut(rest, "/")
		if !ok || key == "" {
			return nil, fmt.Errorf("remote URL %q has no object key", url)
		}
	}

	bucket, err := blob.OpenBucket(ctx, fmt.Sprintf("%s://%s", scheme, bucketName))
	if err != nil {
		return nil, fmt.Errorf("open bucket %s://%s: %w", scheme, bucketName, err)
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return data, nil
}

func decompress(name string, data []byte) ([]byte, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", name, err)
		}
		defer gz.Close()
		out, err := io.ReadAll(gz)
		if err != nil {
			return nil, fmt.Errorf("gunzip %s: %w", name, err)
		}
		return out, nil
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("zstd %s: %w", name, err)
		}
		defer zr.Close()
		out, err := zr.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd %s: %w", name, err)
		}
		return out, nil
	}
	return data, nil
}
