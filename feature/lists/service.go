package lists

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"model-storage/core/filter"
	"model-storage/core/memory"
	"model-storage/core/notify"
	"model-storage/core/objectstore"
	"model-storage/core/section"
	"model-storage/core/update"

	"github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service owns the lists storage. All access goes through its mutex.
type Service struct {
	mu       sync.Mutex
	storage  *memory.Storage
	recorder *notify.Recorder
	search   singleflight.Group

	client objectstore.Client
	bucket string
	cfg    Config
	logger *zap.Logger
}

// NewService creates a lists service. client may be nil when object storage
// is disabled; seeding is then skipped and snapshots fail.
func NewService(client objectstore.Client, bucket string, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	recorder := &notify.Recorder{}
	st := memory.New(memory.WithLogger(logger.Named("lists")), memory.WithNotifier(recorder))
	switch cfg.Usage {
	case "collection":
		st.ConfigureForCollectionViewUsage()
	case "table", "":
		st.ConfigureForTableViewUsage()
	default:
		logger.Warn("Unknown lists usage, using table view kinds", zap.String("usage", cfg.Usage))
		st.ConfigureForTableViewUsage()
	}

	title := filter.Contains(func(e Entry) string { return e.Title })
	fuzzy := filter.Fuzzy(func(e Entry) string { return e.Title + " " + e.Detail })
	filter.Register[Entry](st.Filters(), func(e Entry, query string, scope int, sec *section.Section) bool {
		if scope == ScopeFuzzy {
			return fuzzy(e, query, scope, sec)
		}
		return title(e, query, scope, sec)
	})

	return &Service{
		storage:  st,
		recorder: recorder,
		client:   client,
		bucket:   bucket,
		cfg:      cfg,
		logger:   logger,
	}
}

// Sections returns every section with its header.
func (s *Service) Sections() []SectionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views(s.storage.Sections())
}

// Add appends new entries to the section at index, creating missing sections.
func (s *Service) Add(sectionIndex int, inputs []Input) (Result, error) {
	if sectionIndex < 0 {
		return Result{}, fmt.Errorf("%w: section %d", ErrBadRequest, sectionIndex)
	}
	entries, err := newEntries(inputs)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]any, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	s.storage.AddItems(items, sectionIndex)
	return Result{Delivery: s.take(), Entries: entries}, nil
}

// Insert places a new entry at p.
func (s *Service) Insert(p update.IndexPath, in Input) (Result, error) {
	if err := in.validate(); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	if sec, ok := s.storage.Section(p.Section); ok {
		count = sec.NumberOfItems()
	}
	if p.Section < 0 || p.Item < 0 || p.Item > count {
		return Result{}, fmt.Errorf("%w: cannot insert at %s", ErrBadRequest, p)
	}
	e := in.entry(ulid.Make())
	s.storage.InsertItem(e, p)
	return Result{Delivery: s.take(), Entries: []Entry{e}}, nil
}

// Remove deletes the entries with the given IDs. Unknown IDs are skipped;
// ErrNotFound is returned when none of them exists.
func (s *Service) Remove(ids []string) (Result, error) {
	keys, err := parseIDs(ids)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var known []any
	for _, key := range keys {
		if _, ok := s.storage.IndexPathOf(key); ok {
			known = append(known, key)
		}
	}
	if len(known) == 0 {
		return Result{}, fmt.Errorf("%w: none of the entries exist", ErrNotFound)
	}
	s.storage.RemoveItems(known)
	return Result{Delivery: s.take()}, nil
}

// Replace swaps the content of the entry with id, keeping its ID.
func (s *Service) Replace(id string, in Input) (Result, error) {
	if err := in.validate(); err != nil {
		return Result{}, err
	}
	key, err := parseID(id)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.storage.IndexPathOf(key); !ok {
		return Result{}, fmt.Errorf("%w: entry %s", ErrNotFound, id)
	}
	e := in.entry(key.ID)
	s.storage.ReplaceItem(key, e)
	return Result{Delivery: s.take(), Entries: []Entry{e}}, nil
}

// Reload reports the entry with id as changed in place.
func (s *Service) Reload(id string) (Result, error) {
	key, err := parseID(id)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.storage.IndexPathOf(key); !ok {
		return Result{}, fmt.Errorf("%w: entry %s", ErrNotFound, id)
	}
	s.storage.ReloadItem(key)
	return Result{Delivery: s.take()}, nil
}

// Move relocates the entry at from to to.
func (s *Service) Move(from, to update.IndexPath) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.storage.ItemAt(from); !ok {
		return Result{}, fmt.Errorf("%w: no entry at %s", ErrNotFound, from)
	}
	s.storage.MoveItem(from, to)
	d := s.take()
	if d.Update == nil && !d.Reload {
		return Result{}, fmt.Errorf("%w: cannot move to %s", ErrBadRequest, to)
	}
	return Result{Delivery: d}, nil
}

// SetItems replaces the content of the section at index.
func (s *Service) SetItems(sectionIndex int, inputs []Input) (Result, error) {
	if sectionIndex < 0 {
		return Result{}, fmt.Errorf("%w: section %d", ErrBadRequest, sectionIndex)
	}
	entries, err := newEntries(inputs)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]any, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	s.storage.SetItems(items, sectionIndex)
	return Result{Delivery: s.take(), Entries: entries}, nil
}

// DeleteSections removes the sections at indices. Every index must exist.
func (s *Service) DeleteSections(indices []int) (Result, error) {
	if len(indices) == 0 {
		return Result{}, fmt.Errorf("%w: no sections given", ErrBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, index := range indices {
		if _, ok := s.storage.Section(index); !ok {
			return Result{}, fmt.Errorf("%w: section %d", ErrNotFound, index)
		}
	}
	s.storage.DeleteSections(indices)
	return Result{Delivery: s.take()}, nil
}

// SetHeader sets the header model of the section at index, creating
// missing sections. An empty header clears it.
func (s *Service) SetHeader(sectionIndex int, header string) (Result, error) {
	if sectionIndex < 0 {
		return Result{}, fmt.Errorf("%w: section %d", ErrBadRequest, sectionIndex)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setHeader(sectionIndex, header)
	return Result{Delivery: s.take()}, nil
}

// Batch applies ops as a single batch and answers with one delivery. Every
// op is validated before any of them runs; positions that no longer exist
// when an op runs are skipped by the storage.
func (s *Service) Batch(ops []BatchOp) (Result, error) {
	steps := make([]func(), 0, len(ops))
	var created []Entry

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, op := range ops {
		step, entries, err := s.prepare(op)
		if err != nil {
			return Result{}, fmt.Errorf("op %d: %w", i, err)
		}
		steps = append(steps, step)
		created = append(created, entries...)
	}

	_ = s.storage.PerformUpdates(func() error {
		for _, step := range steps {
			step()
		}
		return nil
	})
	return Result{Delivery: s.take(), Entries: created}, nil
}

func (s *Service) prepare(op BatchOp) (func(), []Entry, error) {
	switch op.Op {
	case OpAdd:
		if err := op.Entry.validate(); err != nil {
			return nil, nil, err
		}
		if op.Section < 0 {
			return nil, nil, fmt.Errorf("%w: section %d", ErrBadRequest, op.Section)
		}
		e := op.Entry.entry(ulid.Make())
		return func() { s.storage.AddItem(e, op.Section) }, []Entry{e}, nil
	case OpInsert:
		if err := op.Entry.validate(); err != nil {
			return nil, nil, err
		}
		e := op.Entry.entry(ulid.Make())
		return func() { s.storage.InsertItem(e, op.Path) }, []Entry{e}, nil
	case OpRemove:
		key, err := parseID(op.ID)
		if err != nil {
			return nil, nil, err
		}
		return func() { s.storage.RemoveItem(key) }, nil, nil
	case OpReplace:
		if err := op.Entry.validate(); err != nil {
			return nil, nil, err
		}
		key, err := parseID(op.ID)
		if err != nil {
			return nil, nil, err
		}
		e := op.Entry.entry(key.ID)
		return func() { s.storage.ReplaceItem(key, e) }, []Entry{e}, nil
	case OpReload:
		key, err := parseID(op.ID)
		if err != nil {
			return nil, nil, err
		}
		return func() { s.storage.ReloadItem(key) }, nil, nil
	case OpMove:
		return func() { s.storage.MoveItem(op.Path, op.To) }, nil, nil
	case OpHeader:
		if op.Section < 0 {
			return nil, nil, fmt.Errorf("%w: section %d", ErrBadRequest, op.Section)
		}
		return func() { s.setHeader(op.Section, op.Header) }, nil, nil
	case OpDeleteSection:
		return func() { s.storage.DeleteSections([]int{op.Section}) }, nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown op %q", ErrBadRequest, op.Op)
	}
}

// Search returns the entries matching query in scope, grouped by section.
// Identical concurrent searches share one evaluation.
func (s *Service) Search(query string, scope int) []SectionView {
	key := strconv.Itoa(scope) + ":" + query
	v, _, _ := s.search.Do(key, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.views(s.storage.ApplyFilter(query, scope).Sections()), nil
	})
	return v.([]SectionView)
}

// Seed loads the configured seed document from object storage. A disabled
// object storage is not an error.
func (s *Service) Seed(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	data, err := objectstore.GetBytes(ctx, s.client, s.bucket, s.cfg.SeedObject)
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode seed %s: %w", s.cfg.SeedObject, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(doc)
	s.recorder.Take()
	s.logger.Info("Lists seeded", zap.Int("sections", len(doc.Sections)))
	return nil
}

// Load replaces the storage content with doc. The change is delivered as a
// reload.
func (s *Service) Load(doc Document) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(doc)
	return Result{Delivery: s.take()}
}

func (s *Service) load(doc Document) {
	items := make([][]any, len(doc.Sections))
	headers := make([]any, len(doc.Sections))
	for i, sec := range doc.Sections {
		items[i] = make([]any, len(sec.Items))
		for j, e := range sec.Items {
			if e.ID == (ulid.ULID{}) {
				e.ID = ulid.Make()
			}
			items[i][j] = e
		}
		if sec.Header != "" {
			headers[i] = sec.Header
		}
	}

	end := s.storage.BeginUpdates()
	defer end()
	s.storage.DeleteSections(allIndices(s.storage.NumberOfSections()))
	s.storage.SetItemsForAllSections(items)
	s.storage.SetSectionHeaderModels(headers)
}

// Snapshot writes the current content as a Document to object storage and
// returns the object name.
func (s *Service) Snapshot(ctx context.Context) (string, error) {
	if s.client == nil {
		return "", ErrStorageDisabled
	}

	s.mu.Lock()
	doc := s.document()
	s.mu.Unlock()

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := objectstore.EnsureBucket(ctx, s.client, s.bucket); err != nil {
		return "", err
	}
	if err := objectstore.PutBytes(ctx, s.client, s.bucket, s.cfg.SnapshotObject, data, "application/json"); err != nil {
		return "", err
	}
	return s.cfg.SnapshotObject, nil
}

func (s *Service) document() Document {
	views := s.views(s.storage.Sections())
	doc := Document{Sections: make([]DocumentSection, len(views))}
	for i, v := range views {
		header, _ := v.Header.(string)
		doc.Sections[i] = DocumentSection{Header: header, Items: v.Items}
	}
	return doc
}

func (s *Service) setHeader(sectionIndex int, header string) {
	var model any
	if header != "" {
		model = header
	}
	s.storage.SetSectionHeaderModel(model, sectionIndex)
}

// take returns the delivery produced by the last storage call. Calls outside
// a batch produce at most one.
func (s *Service) take() notify.Delivery {
	d := s.recorder.Take()
	if len(d) == 0 {
		return notify.Delivery{}
	}
	return d[len(d)-1]
}

func (s *Service) views(sections []*section.Section) []SectionView {
	kind := s.storage.HeaderKind()
	out := make([]SectionView, len(sections))
	for i, sec := range sections {
		items := sec.Items()
		entries := make([]Entry, 0, len(items))
		for _, item := range items {
			if e, ok := item.(Entry); ok {
				entries = append(entries, e)
			}
		}
		out[i] = SectionView{Index: i, Header: sec.Supplementary(kind), Items: entries}
	}
	return out
}

func newEntries(inputs []Input) ([]Entry, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no entries given", ErrBadRequest)
	}
	entries := make([]Entry, len(inputs))
	for i, in := range inputs {
		if err := in.validate(); err != nil {
			return nil, err
		}
		entries[i] = in.entry(ulid.Make())
	}
	return entries, nil
}

func parseID(id string) (Entry, error) {
	parsed, err := ulid.Parse(id)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: invalid id %q", ErrBadRequest, id)
	}
	return Entry{ID: parsed}, nil
}

func parseIDs(ids []string) ([]Entry, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no ids given", ErrBadRequest)
	}
	keys := make([]Entry, len(ids))
	for i, id := range ids {
		key, err := parseID(id)
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}
	return keys, nil
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
