package feed

import (
	"context"
	"fmt"
	"sort"

	"model-storage/core/fetched"
	"model-storage/core/update"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Controller runs the story query and reports how its result changes
// between runs. Sections are channels in ascending name order.
type Controller struct {
	db       *gorm.DB
	table    string
	listener fetched.Listener
	sections []fetched.SectionInfo
	logger   *zap.Logger
}

var _ fetched.Controller = (*Controller)(nil)

// NewController creates a controller over table.
func NewController(db *gorm.DB, table string, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{db: db, table: table, logger: logger}
}

// SetListener sets the receiver of change events.
func (c *Controller) SetListener(l fetched.Listener) {
	c.listener = l
}

// Sections implements fetched.Controller.
func (c *Controller) Sections() []fetched.SectionInfo {
	return c.sections
}

// Refresh re-runs the query. The differences to the previous result are
// reported to the listener inside one Begin/End bracket.
func (c *Controller) Refresh(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("no database connection")
	}
	var stories []Story
	err := c.db.WithContext(ctx).Table(c.table).
		Order("channel ASC").Order("position ASC").Order("id ASC").
		Find(&stories).Error
	if err != nil {
		return fmt.Errorf("failed to fetch stories: %w", err)
	}

	prev := c.sections
	c.sections = group(stories)
	c.logger.Debug("Stories fetched", zap.Int("stories", len(stories)), zap.Int("channels", len(c.sections)))

	if c.listener == nil {
		return nil
	}
	c.listener.BeginChanges()
	report(c.listener, prev, c.sections)
	c.listener.EndChanges()
	return nil
}

func group(stories []Story) []fetched.SectionInfo {
	var out []fetched.SectionInfo
	for _, s := range stories {
		if len(out) == 0 || out[len(out)-1].Name != s.Channel {
			out = append(out, fetched.SectionInfo{Name: s.Channel})
		}
		last := &out[len(out)-1]
		last.Objects = append(last.Objects, s)
	}
	return out
}

type located struct {
	at    update.IndexPath
	story Story
}

// report emits the events turning prev into next. Sections are matched by
// name and stories by ID. Within a surviving section the longest run of
// stories that kept their relative order stays put; every other story that
// changed position is reported as moved.
func report(l fetched.Listener, prev, next []fetched.SectionInfo) {
	prevIndex := make(map[string]int, len(prev))
	for i, s := range prev {
		prevIndex[s.Name] = i
	}
	nextIndex := make(map[string]int, len(next))
	for i, s := range next {
		nextIndex[s.Name] = i
	}
	survives := func(prevSection int) bool {
		_, ok := nextIndex[prev[prevSection].Name]
		return ok
	}
	// The adapter stages a move with equal paths as an in-place update.
	move := func(from, to update.IndexPath) {
		if from == to {
			l.ObjectDeleted(from)
			l.ObjectInserted(to)
			return
		}
		l.ObjectMoved(from, to)
	}

	for i := range prev {
		if !survives(i) {
			l.SectionDeleted(i)
		}
	}
	for i, s := range next {
		if _, ok := prevIndex[s.Name]; !ok {
			l.SectionInserted(i)
		}
	}

	old := make(map[uint]located)
	for si, s := range prev {
		for i, obj := range s.Objects {
			st := obj.(Story)
			old[st.ID] = located{at: update.Path(si, i), story: st}
		}
	}

	seen := make(map[uint]bool)
	for si, s := range next {
		ps, survived := prevIndex[s.Name]

		var candidates []int
		var origins []int
		for i, obj := range s.Objects {
			st := obj.(Story)
			seen[st.ID] = true
			was, known := old[st.ID]
			switch {
			case !known || !survives(was.at.Section):
				l.ObjectInserted(update.Path(si, i))
			case survived && was.at.Section == ps:
				candidates = append(candidates, i)
				origins = append(origins, was.at.Item)
			default:
				move(was.at, update.Path(si, i))
			}
		}

		stay := increasingRun(origins)
		for k, i := range candidates {
			st := s.Objects[i].(Story)
			was := old[st.ID]
			if !stay[k] {
				move(was.at, update.Path(si, i))
				continue
			}
			if st.changed(was.story) {
				l.ObjectUpdated(update.Path(si, i))
			}
		}
	}

	for si, s := range prev {
		if !survives(si) {
			continue
		}
		for i, obj := range s.Objects {
			if !seen[obj.(Story).ID] {
				l.ObjectDeleted(update.Path(si, i))
			}
		}
	}
}

// increasingRun marks the members of one longest strictly increasing
// subsequence of values.
func increasingRun(values []int) []bool {
	member := make([]bool, len(values))
	if len(values) == 0 {
		return member
	}
	// tails[k] is the index of the smallest tail of an increasing run of length k+1.
	tails := make([]int, 0, len(values))
	parent := make([]int, len(values))
	for i, v := range values {
		k := sort.Search(len(tails), func(j int) bool { return values[tails[j]] >= v })
		if k > 0 {
			parent[i] = tails[k-1]
		} else {
			parent[i] = -1
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}
	for i := tails[len(tails)-1]; i >= 0; i = parent[i] {
		member[i] = true
	}
	return member
}
