package main

import (
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// openInput opens path, or stdin for "" and "-", and transparently
// decompresses gzip content.
func openInput(path string) (io.ReadCloser, error) {
	var f *os.File
	if path == "" || path == "-" {
		f = os.Stdin
	} else {
		var err error
		if f, err = os.Open(path); err != nil {
			return nil, errors.Wrapf(err, "open %s", path)
		}
	}

	br := bufio.NewReader(f)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		_ = f.Close()
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if len(head) < len(gzipMagic) || head[0] != gzipMagic[0] || head[1] != gzipMagic[1] {
		return readCloser{Reader: br, closer: f}, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "gunzip %s", path)
	}
	return readCloser{Reader: zr, closer: multiCloser{zr, f}}, nil
}

type readCloser struct {
	io.Reader
	closer io.Closer
}

func (r readCloser) Close() error { return r.closer.Close() }

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var err error
	for _, c := range m {
		err = errors.CombineErrors(err, c.Close())
	}
	return err
}
