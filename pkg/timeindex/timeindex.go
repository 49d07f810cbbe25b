// Package timeindex builds a chronological index of timestamp-named
// satellite stills and answers nearest-neighbour queries against it.
//
// Stills carry their capture instant in the filename: the first twelve
// characters are YYYYMMDDHHMM in UTC, e.g. 202401010830.jpg. Filenames
// are the only source of time metadata; file contents are never read.
package timeindex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// StampLayout is the leading filename timestamp: year, month, day, hour,
// minute, zero padded, UTC.
const StampLayout = "200601021504"

// Ext is the extension stills are stored with. Files with any other
// extension are not part of the corpus and are skipped during Build.
const Ext = ".jpg"

var (
	// ErrMalformedName means a corpus file does not begin with a valid
	// YYYYMMDDHHMM timestamp. A single such file poisons the whole index.
	ErrMalformedName = errors.New("filename does not begin with a YYYYMMDDHHMM timestamp")

	// ErrEmptyIndex is returned by Nearest when there are no stills to
	// select from.
	ErrEmptyIndex = errors.New("no stills indexed")
)

// Entry pairs the instant parsed from a still's filename with its path.
type Entry struct {
	Time time.Time
	Path string
}

// Index is an ordered sequence of stills, ascending by timestamp. Entries
// that share a timestamp keep the order they were added in. The zero
// value is an empty, usable index.
type Index struct {
	entries []Entry
}

// ParseStamp decodes the leading timestamp of a still's filename.
// Anything after the first twelve characters is ignored, so suffixes
// like 202401010830_goes16.jpg are fine.
func ParseStamp(name string) (time.Time, error) {
	if len(name) < len(StampLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedName, name)
	}
	t, err := time.Parse(StampLayout, name[:len(StampLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedName, name)
	}
	return t, nil
}

// Stamp renders t in the filename layout ParseStamp consumes.
func Stamp(t time.Time) string {
	return t.UTC().Format(StampLayout)
}

// Build scans dir for stills and indexes them. Directories and files
// without the still extension are skipped; a still whose name fails to
// parse aborts the build, naming the offender.
func Build(dir string) (*Index, error) {
	fs, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, f := range fs {
		if f.IsDir() || filepath.Ext(f.Name()) != Ext {
			continue
		}
		ts, err := ParseStamp(f.Name())
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Time: ts, Path: filepath.Join(dir, f.Name())})
	}
	return FromEntries(entries), nil
}

// FromEntries indexes already-parsed entries, in whatever order they
// arrive. The input slice is not modified.
func FromEntries(entries []Entry) *Index {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})
	return &Index{entries: sorted}
}

// Len reports how many stills are indexed.
func (ix *Index) Len() int { return len(ix.entries) }

// At returns the i'th entry in ascending timestamp order.
func (ix *Index) At(i int) Entry { return ix.entries[i] }

// Nearest returns the still whose timestamp is closest to t. An exact
// tie between two neighbours selects the earlier one, and queries
// outside the indexed range clamp to the first or last still.
func (ix *Index) Nearest(t time.Time) (Entry, error) {
	if len(ix.entries) == 0 {
		return Entry{}, fmt.Errorf("%w: nothing to select for %s", ErrEmptyIndex, t.Format(time.RFC3339))
	}
	i := sort.Search(len(ix.entries), func(i int) bool {
		return !ix.entries[i].Time.Before(t)
	})
	if i == 0 {
		return ix.entries[0], nil
	}
	if i == len(ix.entries) {
		return ix.entries[len(ix.entries)-1], nil
	}
	before, after := ix.entries[i-1], ix.entries[i]
	if t.Sub(before.Time) <= after.Time.Sub(t) {
		return before, nil
	}
	return after, nil
}
