package memory

import (
	"model-storage/core/section"

	"go.uber.org/zap"
)

// WithSupplementaryKinds sets the kinds used by the header and footer helpers.
func WithSupplementaryKinds(header, footer string) Option {
	return func(s *Storage) {
		s.headerKind = header
		s.footerKind = footer
	}
}

// ConfigureForTableViewUsage points the header and footer helpers at the
// table view kinds.
func (s *Storage) ConfigureForTableViewUsage() {
	s.headerKind = section.TableViewSectionHeader
	s.footerKind = section.TableViewSectionFooter
}

// ConfigureForCollectionViewUsage points the header and footer helpers at the
// collection view kinds.
func (s *Storage) ConfigureForCollectionViewUsage() {
	s.headerKind = section.CollectionViewSectionHeader
	s.footerKind = section.CollectionViewSectionFooter
}

// HeaderKind returns the configured header kind.
func (s *Storage) HeaderKind() string { return s.headerKind }

// FooterKind returns the configured footer kind.
func (s *Storage) FooterKind() string { return s.footerKind }

// SetSupplementaryModel stores model under kind for the section at index,
// creating missing sections, and records a section update. A nil model
// clears the kind. Sections created by the call are reported as inserts
// only.
func (s *Storage) SetSupplementaryModel(model any, kind string, sectionIndex int) {
	s.beginBatch(false)
	defer s.endBatch()

	if sectionIndex < 0 {
		s.logger.Warn("Cannot set supplementary of negative section", zap.Int("section", sectionIndex))
		return
	}
	existed := sectionIndex < len(s.sections)
	s.ensureSection(sectionIndex).SetSupplementary(kind, model)
	if existed {
		s.batch.updateSection(sectionIndex)
	}
}

// SetSupplementaries stores models[i] under kind for section i, creating
// sections as needed. An empty models clears kind in every section. The
// batch is delivered as a full reload.
func (s *Storage) SetSupplementaries(models []any, kind string) {
	s.beginBatch(false)
	defer s.endBatch()

	if len(models) == 0 {
		for _, sec := range s.sections {
			sec.SetSupplementary(kind, nil)
		}
	} else {
		for i, model := range models {
			s.ensureSection(i).SetSupplementary(kind, model)
		}
	}
	s.batch.requireReload()
}

// SetSectionHeaderModel sets the header model of the section at index.
func (s *Storage) SetSectionHeaderModel(model any, sectionIndex int) {
	if kind, ok := s.kind(s.headerKind, "header"); ok {
		s.SetSupplementaryModel(model, kind, sectionIndex)
	}
}

// SetSectionFooterModel sets the footer model of the section at index.
func (s *Storage) SetSectionFooterModel(model any, sectionIndex int) {
	if kind, ok := s.kind(s.footerKind, "footer"); ok {
		s.SetSupplementaryModel(model, kind, sectionIndex)
	}
}

// SetSectionHeaderModels sets one header model per section.
func (s *Storage) SetSectionHeaderModels(models []any) {
	if kind, ok := s.kind(s.headerKind, "header"); ok {
		s.SetSupplementaries(models, kind)
	}
}

// SetSectionFooterModels sets one footer model per section.
func (s *Storage) SetSectionFooterModels(models []any) {
	if kind, ok := s.kind(s.footerKind, "footer"); ok {
		s.SetSupplementaries(models, kind)
	}
}

// HeaderModel returns the header model of the section at index.
func (s *Storage) HeaderModel(sectionIndex int) any {
	if s.headerKind == "" {
		return nil
	}
	return s.SupplementaryModel(s.headerKind, sectionIndex)
}

// FooterModel returns the footer model of the section at index.
func (s *Storage) FooterModel(sectionIndex int) any {
	if s.footerKind == "" {
		return nil
	}
	return s.SupplementaryModel(s.footerKind, sectionIndex)
}

func (s *Storage) kind(kind, role string) (string, bool) {
	if kind == "" {
		s.logger.Warn("Supplementary kind is not configured", zap.String("role", role))
		return "", false
	}
	return kind, true
}
