// core/adapters/loader.go
package adapters

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"seqload/core/fasta"
)

// LoadEvent summarizes one finished load call, successful or not.
type LoadEvent struct {
	ID       string // unique per call
	Source   string
	Role     Role
	Mode     RCMode
	Records  int // source records read
	Bars     int // bars appended to the store
	Duration time.Duration
	Err      error
}

// Observer is notified after every load call.
type Observer interface {
	ObserveLoad(LoadEvent)
}

// Options configures a Loader.
type Options struct {
	Role Role
	Mode RCMode // ignored for barcodes

	// Out receives PrintAdapters output. Defaults to os.Stdout.
	Out io.Writer
	// Logger defaults to a handler that discards everything.
	Logger   *slog.Logger
	Observer Observer

	// Transactional stages a batch and appends it only when the whole batch
	// is valid. Otherwise bars from records preceding a duplicate stay in
	// the store.
	Transactional bool
}

// Loader reads adapter or barcode files into a Store.
type Loader struct {
	opts  Options
	store *Store
	log   *slog.Logger
}

// NewLoader returns a loader appending to store; a nil store gets a fresh one.
func NewLoader(store *Store, opts Options) *Loader {
	if store == nil {
		store = &Store{}
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{
		opts:  opts,
		store: store,
		log:   log.With("component", "loader", "role", opts.Role.String()),
	}
}

func (l *Loader) Store() *Store { return l.store }

func (l *Loader) Role() Role { return l.opts.Role }

// Load reads path and appends its records. The file is fully parsed before
// the store is touched, so open and parse failures leave it unchanged.
// Errors are *OpenError, *ParseError or *DuplicateIdentifierError.
func (l *Loader) Load(path string) error {
	start := time.Now()
	recs, err := fasta.ReadFile(path)
	if err != nil {
		return l.finish(LoadEvent{Source: path}, start, err)
	}
	return l.add(path, recs, start)
}

// LoadReader is Load for an already-open input; name labels errors and logs.
func (l *Loader) LoadReader(name string, r io.Reader) error {
	start := time.Now()
	recs, err := fasta.ReadAll(r, name)
	if err != nil {
		return l.finish(LoadEvent{Source: name}, start, err)
	}
	return l.add(name, recs, start)
}

// LoadPreset loads one built-in adapter definition as a single record named
// after the preset: Seq1, or Seq2 when secondary is set.
func (l *Loader) LoadPreset(name string, secondary bool) error {
	start := time.Now()
	src := "preset:" + name
	def, err := LookupPreset(name)
	if err != nil {
		return l.finish(LoadEvent{Source: src}, start, err)
	}
	seq := def.Seq1
	if secondary {
		seq = def.Seq2
	}
	if seq == "" {
		err = fmt.Errorf("preset %q has no read-2 sequence", name)
		return l.finish(LoadEvent{Source: src}, start, err)
	}
	return l.add(src, []fasta.Record{{ID: def.Name, Seq: []byte(seq)}}, start)
}

func (l *Loader) add(source string, recs []fasta.Record, start time.Time) error {
	var (
		seen   = make(map[string]struct{}, len(recs))
		staged []Bar
		bars   int
		err    error
	)
	for _, rec := range recs {
		if _, dup := seen[rec.ID]; dup {
			err = &DuplicateIdentifierError{Role: l.opts.Role, ID: rec.ID, Source: source, Appended: bars}
			break
		}
		seen[rec.ID] = struct{}{}

		out := Expand(rec.ID, string(rec.Seq), l.opts.Role, l.opts.Mode)
		if l.opts.Transactional {
			staged = append(staged, out...)
			continue
		}
		l.store.Append(out...)
		bars += len(out)
	}
	if l.opts.Transactional && err == nil {
		l.store.Append(staged...)
		bars = len(staged)
	}
	return l.finish(LoadEvent{Source: source, Records: len(recs), Bars: bars}, start, err)
}

func (l *Loader) finish(ev LoadEvent, start time.Time, err error) error {
	ev.ID = uuid.NewString()
	ev.Role = l.opts.Role
	ev.Mode = l.opts.Mode
	ev.Duration = time.Since(start)
	ev.Err = err

	attrs := []any{
		"load_id", ev.ID, "source", ev.Source, "rc_mode", ev.Mode.String(),
		"records", ev.Records, "bars", ev.Bars, "duration", ev.Duration,
	}
	if err != nil {
		l.log.Debug("load failed", append(attrs, "error", err)...)
	} else {
		l.log.Debug("sequences loaded", attrs...)
	}
	if l.opts.Observer != nil {
		l.opts.Observer.ObserveLoad(ev)
	}
	return err
}

// Adapters returns a snapshot of the store.
func (l *Loader) Adapters() []Bar { return l.store.All() }

// SetAdapters replaces the store contents. Callers serialize against
// concurrent readers themselves if that matters.
func (l *Loader) SetAdapters(bars []Bar) { l.store.Set(bars) }

// PrintAdapters writes the store as a table (see WriteTable) to Options.Out.
func (l *Loader) PrintAdapters(label string) error {
	return WriteTable(l.opts.Out, label, l.store.All())
}
