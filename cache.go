package packet

import (
	"io"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is the number of parsed packets a Decoder keeps.
const DefaultCacheSize = 4096

// Decoder parses packets, remembering recently parsed lines. Parsed trees
// are never mutated so the same *Node is handed out for repeated lines.
// A Decoder is safe for concurrent use.
type Decoder struct {
	Parser Parser
	Cache  *lru.ARCCache

	hits   uint64
	misses uint64
}

func NewDecoder(size int) (*Decoder, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		Parser: LimitedParser,
		Cache:  cache,
	}, nil
}

func (d *Decoder) Decode(text string) (*Node, error) {
	if lookup, ok := d.Cache.Get(text); ok {
		atomic.AddUint64(&d.hits, 1)
		return lookup.(*Node), nil
	}
	atomic.AddUint64(&d.misses, 1)

	n, err := d.Parser.Parse(text)
	if err != nil {
		return nil, err
	}
	d.Cache.Add(text, n)
	return n, nil
}

// ReadPairs is like the package level ReadPairs but parses through the
// cache.
func (d *Decoder) ReadPairs(r io.Reader) ([]Pair, error) {
	return readPairs(r, d.Decode)
}

func (d *Decoder) Hits() uint64 {
	return atomic.LoadUint64(&d.hits)
}

func (d *Decoder) Misses() uint64 {
	return atomic.LoadUint64(&d.misses)
}
