package section

// Supplementary kinds used by list views for section headers and footers.
const (
	TableViewSectionHeader      = "table-view-section-header"
	TableViewSectionFooter      = "table-view-section-footer"
	CollectionViewSectionHeader = "collection-view-section-header"
	CollectionViewSectionFooter = "collection-view-section-footer"
)
