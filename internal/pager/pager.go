// Package pager owns the file descriptor and the in-memory page cache for
// the on-disk B+-tree. Every other core package reaches the file only
// through a Pager.
package pager

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/felipebalbi/simpledb/internal/dbfatal"
	"github.com/felipebalbi/simpledb/internal/node"
)

const (
	PageSize        = node.PageSize
	DefaultMaxPages = 100
)

// Pager caches page-sized buffers indexed 0..maxPages-1 and performs
// lazy read-through / explicit write-through against the backing file.
type Pager struct {
	file      *os.File
	maxPages  uint32
	diskPages uint32 // page count implied by the file length at Open time
	numPages  uint32 // count of page slots ever materialized this session
	pages     [][]byte
}

// Open opens path for read/write, creating it with mode 0600 if absent.
// The file length must be a multiple of PageSize; any other length is a
// fatal integrity error (spec §4.9).
func Open(path string, maxPages uint32) (*Pager, error) {
	if maxPages == 0 {
		maxPages = DefaultMaxPages
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("pager: open %s: %w", path, err)
	}

	length, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("pager: seek %s: %w", path, err)
	}

	if length%PageSize != 0 {
		dbfatal.Fatalw("db file is not a whole number of pages",
			"path", path, "length", length, "page_size", PageSize)
	}

	diskPages := uint32(length / PageSize)

	return &Pager{
		file:      f,
		maxPages:  maxPages,
		diskPages: diskPages,
		numPages:  diskPages,
		pages:     make([][]byte, maxPages),
	}, nil
}

// NumPages reports how many page slots have been materialized this session.
func (p *Pager) NumPages() uint32 { return p.numPages }

// UnusedPageNum hands out the next never-before-used page number. Pages are
// append-only: they are never recycled.
func (p *Pager) UnusedPageNum() uint32 { return p.numPages }

// GetPage returns a borrow into the cached buffer for pageNum, loading it
// from disk or zero-initializing it on first reference. pageNum must be
// strictly less than maxPages; out of range is a fatal capacity error.
func (p *Pager) GetPage(pageNum uint32) []byte {
	if pageNum >= p.maxPages {
		dbfatal.Fatalw("page number out of bounds",
			"page_num", pageNum, "max_pages", p.maxPages)
	}

	if p.pages[pageNum] == nil {
		buf := make([]byte, PageSize)

		if pageNum < p.diskPages {
			off := int64(pageNum) * PageSize
			if _, err := p.file.Seek(off, io.SeekStart); err != nil {
				dbfatal.Fatalw("error seeking page", "page_num", pageNum, "error", err)
			}
			if _, err := io.ReadFull(p.file, buf); err != nil {
				dbfatal.Fatalw("error reading page", "page_num", pageNum, "error", err)
			}
		}

		p.pages[pageNum] = buf
		if pageNum >= p.numPages {
			p.numPages = pageNum + 1
		}
	}

	return p.pages[pageNum]
}

// Flush writes pageNum's full 4096 bytes back to the file. Flushing a slot
// that was never materialized is a fatal integrity error.
func (p *Pager) Flush(pageNum uint32) error {
	if p.pages[pageNum] == nil {
		dbfatal.Fatalw("tried to flush empty cache slot", "page_num", pageNum)
	}

	off := int64(pageNum) * PageSize
	if _, err := p.file.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("pager: seek page %d: %w", pageNum, err)
	}
	if _, err := p.file.Write(p.pages[pageNum]); err != nil {
		return fmt.Errorf("pager: write page %d: %w", pageNum, err)
	}
	return nil
}

// Close flushes every materialized page and closes the file. Flush
// failures on individual pages are aggregated rather than short-circuited,
// so a bad page never masks others; every materialized page is attempted.
func (p *Pager) Close() error {
	var errs error
	for i := uint32(0); i < p.numPages; i++ {
		if p.pages[i] == nil {
			continue
		}
		if err := p.Flush(i); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if err := p.file.Close(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("pager: close: %w", err))
	}

	for i := range p.pages {
		p.pages[i] = nil
	}

	return errs
}
