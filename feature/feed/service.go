package feed

import (
	"context"
	"strconv"
	"sync"

	"model-storage/core/fetched"
	"model-storage/core/filter"
	"model-storage/core/notify"
	"model-storage/core/section"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Service exposes the feed storage built over the story controller.
type Service struct {
	mu         sync.Mutex
	controller *Controller
	storage    *fetched.Storage
	recorder   *notify.Recorder
	search     singleflight.Group

	db     *gorm.DB
	cfg    Config
	logger *zap.Logger
}

// NewService creates a feed service. It fails when cfg.Filter does not
// compile.
func NewService(db *gorm.DB, cfg Config, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	controller := NewController(db, cfg.Table, logger)
	st := fetched.NewStorage(controller, fetched.WithLogger(logger.Named("feed")))
	recorder := &notify.Recorder{}
	controller.SetListener(st.Listener())
	st.SetNotifier(recorder)

	title := filter.Contains(func(s Story) string { return s.Title })
	match := title
	if cfg.Filter != "" {
		rule, err := filter.Expr[Story](cfg.Filter)
		if err != nil {
			return nil, err
		}
		match = filter.All(rule, title)
	}
	filter.Register[Story](st.Filters(), match)

	return &Service{
		controller: controller,
		storage:    st,
		recorder:   recorder,
		db:         db,
		cfg:        cfg,
		logger:     logger,
	}, nil
}

// Channels returns the current sections of the feed.
func (s *Service) Channels() []ChannelView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return views(s.storage.Sections())
}

// Refresh re-runs the story query and returns the change delivered for it.
// An unchanged result delivers nothing.
func (s *Service) Refresh(ctx context.Context) (notify.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.controller.Refresh(ctx); err != nil {
		s.recorder.Take()
		return notify.Delivery{}, err
	}
	d := s.recorder.Take()
	if len(d) == 0 {
		return notify.Delivery{}, nil
	}
	return d[len(d)-1], nil
}

// Search returns the stories whose title contains query and that satisfy
// the configured filter.
func (s *Service) Search(query string, scope int) []ChannelView {
	v, _, _ := s.search.Do(strconv.Itoa(scope)+":"+query, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return views(s.storage.ApplyFilter(query, scope).Sections()), nil
	})
	return v.([]ChannelView)
}

func views(sections []*section.Section) []ChannelView {
	out := make([]ChannelView, len(sections))
	for i, sec := range sections {
		name, _ := sec.Supplementary(section.TableViewSectionHeader).(string)
		items := sec.Items()
		stories := make([]Story, 0, len(items))
		for _, item := range items {
			if st, ok := item.(Story); ok {
				stories = append(stories, st)
			}
		}
		out[i] = ChannelView{Index: i, Name: name, Stories: stories}
	}
	return out
}
