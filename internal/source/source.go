// Package source feeds files into checksum digests, memory mapping large
// files where the platform allows it.
package source

import (
	"fmt"
	"hash"
	"io"
	"os"
)

// Options control how a file is read.
type Options struct {
	// MMap enables memory mapping for files of at least MMapMinBytes.
	MMap         bool
	MMapMinBytes int64
}

// Result describes how a file was consumed.
type Result struct {
	Size   int64
	Mapped bool
}

// File writes the contents of path to every hash in hs.
func File(path string, opts Options, hs ...hash.Hash64) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return Result{}, err
	}
	if st.IsDir() {
		return Result{}, fmt.Errorf("%s: is a directory", path)
	}
	res := Result{Size: st.Size()}

	if opts.MMap && st.Mode().IsRegular() && st.Size() > 0 && st.Size() >= opts.MMapMinBytes {
		data, unmap, err := mapFile(f, st.Size())
		if err == nil {
			defer unmap()
			for _, h := range hs {
				h.Write(data)
			}
			res.Mapped = true
			return res, nil
		}
		// Fall back to reading.
	}

	n, err := Stream(f, hs...)
	res.Size = n
	return res, err
}

// Stream copies r into every hash in hs and returns the number of bytes read.
func Stream(r io.Reader, hs ...hash.Hash64) (int64, error) {
	ws := make([]io.Writer, len(hs))
	for i, h := range hs {
		ws[i] = h
	}
	return io.Copy(io.MultiWriter(ws...), r)
}
