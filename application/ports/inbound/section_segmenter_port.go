package inbound

// SectionSegmenterPort splits a generated narrative into its title followed by at most a
// bounded number of display sections.
type SectionSegmenterPort interface {
	Segment(rawText string) []string
}
