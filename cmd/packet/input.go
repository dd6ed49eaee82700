package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/alttpo/packet"
	"github.com/edsrzf/mmap-go"
	"github.com/yargevad/filepathx"
)

// expandInputs resolves glob patterns (including **) into a sorted,
// de-duplicated list of paths. Every pattern must match something.
func expandInputs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepathx.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("input %q: no such file", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// readPairsFile maps path read-only and decodes its pairs.
func readPairsFile(d *packet.Decoder, path string) (pairs []packet.Pair, size int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}
	size = info.Size()
	if size == 0 {
		// mmap refuses empty files
		return nil, 0, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, size, err
	}
	defer m.Unmap()

	pairs, err = d.ReadPairs(bytes.NewReader(m))
	if err != nil {
		return nil, size, fmt.Errorf("%s: %w", path, err)
	}
	return pairs, size, nil
}
