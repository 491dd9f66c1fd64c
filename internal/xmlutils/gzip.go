package xmlutils

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// IsGzip reports whether the buffered stream starts with the gzip magic bytes.
// Nothing is consumed from r.
func IsGzip(r *bufio.Reader) bool {
	head, err := r.Peek(len(gzipMagic))
	if err != nil {
		return false
	}
	return head[0] == gzipMagic[0] && head[1] == gzipMagic[1]
}

// Decompress returns a reader over the decompressed content of r. GnuCash can
// save books uncompressed, so a stream without the gzip magic is returned as is.
func Decompress(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	if !IsGzip(br) {
		return io.NopCloser(br), nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	return zr, nil
}

// OpenFile opens path and returns its decompressed content. Closing the returned
// reader closes the file.
func OpenFile(path string) (io.ReadCloser, error) {
	// #nosec G304 -- reading user-specified ledger files is expected
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	rc, err := Decompress(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return &fileReader{ReadCloser: rc, file: file}, nil
}

type fileReader struct {
	io.ReadCloser
	file *os.File
}

func (f *fileReader) Close() error {
	errReader := f.ReadCloser.Close()
	errFile := f.file.Close()
	if errReader != nil {
		return errReader
	}
	return errFile
}

// Compress gzips data. Used to produce books in the format GnuCash writes.
func Compress(w io.Writer, data []byte) error {
	zw := gzip.NewWriter(w)
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("failed to write gzip stream: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close gzip stream: %w", err)
	}
	return nil
}
