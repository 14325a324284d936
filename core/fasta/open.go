// core/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// zstdCloser adapts zstd.Decoder.Close (no error) to io.Closer.
type zstdCloser struct{ d *zstd.Decoder }

func (z zstdCloser) Close() error {
	z.d.Close()
	return nil
}

// Open returns a reader over path. "-" reads stdin. gzip and zstd input are
// detected by magic number or suffix, brotli by the ".br" suffix only.
// Errors are reported as *OpenError.
func Open(path string) (io.ReadCloser, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return rc, nil
}

func openReader(path string) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer
	)
	if path == "-" {
		src, closer = os.Stdin, io.NopCloser(nil)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, closer = fh, fh
	}

	// Peek instead of Seek so that pipes and stdin are sniffed too.
	br := bufio.NewReader(src)
	sig, _ := br.Peek(len(zstdMagic))
	lower := strings.ToLower(path)

	switch {
	case bytes.HasPrefix(sig, gzipMagic) || strings.HasSuffix(lower, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, closer}}, nil
	case bytes.HasPrefix(sig, zstdMagic) || strings.HasSuffix(lower, ".zst"):
		zr, err := zstd.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zstdCloser{zr}, closer}}, nil
	case strings.HasSuffix(lower, ".br"):
		return &multiReadCloser{Reader: brotli.NewReader(br), closers: []io.Closer{closer}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{closer}}, nil
}

