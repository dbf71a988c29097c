package replay

import (
	"errors"
	"fmt"

	"model-storage/core/memory"
	"model-storage/core/notify"
	"model-storage/core/section"
	"model-storage/core/update"

	"go.uber.org/zap"
)

// ErrVerification is returned when a delivered update does not replay the
// pre-batch content into the post-batch content.
var ErrVerification = errors.New("update does not match storage content")

// Result describes one executed batch.
type Result struct {
	Name       string             `yaml:"name" json:"name"`
	Reload     bool               `yaml:"reload" json:"reload"`
	Operations []update.Operation `yaml:"operations,omitempty" json:"operations,omitempty"`
	Sections   [][]string         `yaml:"sections" json:"sections"`
	Verified   bool               `yaml:"verified" json:"verified"`
}

// Report is the outcome of a script run.
type Report struct {
	Batches []Result `yaml:"batches" json:"batches"`
}

// Runner executes scripts against a fresh storage.
type Runner struct {
	logger *zap.Logger
	verify bool
}

// NewRunner creates a runner. With verify set every delivered update is
// replayed with update.Apply and compared to the storage.
func NewRunner(logger *zap.Logger, verify bool) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, verify: verify}
}

// Run executes s. It stops at the first batch that fails verification.
func (r *Runner) Run(s *Script) (*Report, error) {
	recorder := &notify.Recorder{}
	st := memory.New(memory.WithLogger(r.logger), memory.WithNotifier(recorder))
	if s.Usage == "collection" {
		st.ConfigureForCollectionViewUsage()
	} else {
		st.ConfigureForTableViewUsage()
	}

	r.load(st, s.Initial)
	recorder.Take()

	report := &Report{}
	for i, b := range s.Batches {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("batch %d", i+1)
		}
		before := snapshot(st)

		err := st.PerformUpdates(func() error {
			for _, op := range b.Ops {
				if err := apply(st, op); err != nil {
					return err
				}
			}
			return nil
		})
		deliveries := recorder.Take()
		if err != nil {
			return report, fmt.Errorf("%s: %w", name, err)
		}

		after := snapshot(st)
		res := Result{Name: name, Sections: after}
		if len(deliveries) > 0 {
			d := deliveries[len(deliveries)-1]
			res.Reload = d.Reload
			if d.Update != nil {
				res.Operations = d.Update.Operations()
				if r.verify {
					if err := check(before, after, d.Update); err != nil {
						report.Batches = append(report.Batches, res)
						return report, fmt.Errorf("%s: %w", name, err)
					}
					res.Verified = true
				}
			}
		}
		r.logger.Debug("Batch replayed",
			zap.String("batch", name),
			zap.Bool("reload", res.Reload),
			zap.Int("operations", len(res.Operations)),
		)
		report.Batches = append(report.Batches, res)
	}
	return report, nil
}

func (r *Runner) load(st *memory.Storage, blocks []InitialBlock) {
	end := st.BeginUpdates()
	defer end()
	for i, b := range blocks {
		sec := section.New()
		sec.SetItems(models(b.Items))
		if b.Header != "" {
			sec.SetSupplementary(st.HeaderKind(), b.Header)
		}
		if b.Footer != "" {
			sec.SetSupplementary(st.FooterKind(), b.Footer)
		}
		st.InsertSection(sec, i)
	}
}

func apply(st *memory.Storage, op Op) error {
	switch op.Op {
	case OpAdd:
		if len(op.Items) > 0 {
			st.AddItems(models(op.Items), op.Section)
		} else {
			st.AddItem(op.Item, op.Section)
		}
	case OpInsert:
		if len(op.Items) > 0 {
			st.InsertItems(models(op.Items), op.Paths)
		} else {
			st.InsertItem(op.Item, op.Path)
		}
	case OpRemove:
		if len(op.Items) > 0 {
			st.RemoveItems(models(op.Items))
		} else {
			st.RemoveItem(op.Item)
		}
	case OpRemoveAt:
		st.RemoveItemsAt(op.Paths)
	case OpRemoveSectionItems:
		st.RemoveItemsFromSection(op.Section)
	case OpRemoveAll:
		st.RemoveAllItems()
	case OpReplace:
		st.ReplaceItem(op.Item, optional(op.With))
	case OpReload:
		st.ReloadItem(op.Item)
	case OpMove:
		st.MoveItem(op.Path, op.To)
	case OpMoveSection:
		st.MoveSection(op.Section, op.Index)
	case OpInsertSection:
		sec := section.New()
		sec.SetItems(models(op.Items))
		if op.Text != "" {
			sec.SetSupplementary(st.HeaderKind(), op.Text)
		}
		st.InsertSection(sec, op.Index)
	case OpSetItems:
		st.SetItems(models(op.Items), op.Section)
	case OpDeleteSections:
		st.DeleteSections(op.Sections)
	case OpHeader:
		st.SetSectionHeaderModel(optional(op.Text), op.Section)
	case OpFooter:
		st.SetSectionFooterModel(optional(op.Text), op.Section)
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, op.Op)
	}
	return nil
}

func check(before, after [][]string, u *update.Update) error {
	got, err := update.Apply(before, u, func(p update.IndexPath) (string, bool) {
		if p.Section < 0 || p.Section >= len(after) || p.Item < 0 || p.Item >= len(after[p.Section]) {
			return "", false
		}
		return after[p.Section][p.Item], true
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerification, err)
	}
	if len(got) != len(after) {
		return fmt.Errorf("%w: %d sections after replay, storage has %d", ErrVerification, len(got), len(after))
	}
	for s := range got {
		if len(got[s]) != len(after[s]) {
			return fmt.Errorf("%w: section %d has %d items after replay, storage has %d", ErrVerification, s, len(got[s]), len(after[s]))
		}
		for i := range got[s] {
			if got[s][i] != after[s][i] {
				return fmt.Errorf("%w: %s is %q after replay, storage has %q", ErrVerification, update.Path(s, i), got[s][i], after[s][i])
			}
		}
	}
	return nil
}

func snapshot(st *memory.Storage) [][]string {
	snap := st.Snapshot()
	out := make([][]string, len(snap))
	for i, items := range snap {
		out[i] = make([]string, 0, len(items))
		for _, item := range items {
			out[i] = append(out[i], fmt.Sprint(item))
		}
	}
	return out
}

func models(items []string) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func optional(text string) any {
	if text == "" {
		return nil
	}
	return text
}
