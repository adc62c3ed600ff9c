package main

import (
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// mmapThreshold is the file size above which inputs are memory mapped
// instead of read into a heap buffer.
const mmapThreshold = 1 << 20

// readInput returns the file contents and a cleanup func. Large files are
// mapped read-only with a sequential-access hint; the pipeline walks the
// text a handful of times in mostly ascending order, so paging it in
// lazily keeps peak memory at the index arrays rather than 2x the input.
func readInput(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	if st.Size() < mmapThreshold {
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, nil, err
		}
		return data, func() {}, nil
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("mmap input file: %w", err)
	}
	fadviseSequential(int(f.Fd()), 0, st.Size())

	// Per POSIX mmap(2), the mapping survives closing f.
	f.Close()
	return mm, func() { _ = mm.Unmap() }, nil
}
