package services

import (
	"strings"

	"github.com/0xlimon/hyperbolic-story-creator/application/ports/inbound"
)

const (
	DefaultSectionWordThreshold = 300
	DefaultMaxSections          = 4
)

const blockSeparator = "\n\n"

type sectionSegmenter struct {
	wordThreshold int
	maxSections   int
}

// NewSectionSegmenter falls back to the defaults for non-positive limits.
func NewSectionSegmenter(wordThreshold int, maxSections int) inbound.SectionSegmenterPort {
	if wordThreshold <= 0 {
		wordThreshold = DefaultSectionWordThreshold
	}
	if maxSections <= 0 {
		maxSections = DefaultMaxSections
	}
	return &sectionSegmenter{
		wordThreshold: wordThreshold,
		maxSections:   maxSections,
	}
}

func (s *sectionSegmenter) Segment(rawText string) []string {
	blocks := s.splitBlocks(rawText)
	if len(blocks) == 0 {
		return []string{""}
	}

	title, _, _ := strings.Cut(blocks[0], "\n")
	sections := s.mergeBlocks(blocks[1:])
	if len(sections) > s.maxSections {
		sections = sections[:s.maxSections]
	}

	return append([]string{strings.TrimSpace(title)}, sections...)
}

func (s *sectionSegmenter) splitBlocks(rawText string) []string {
	normalized := strings.ReplaceAll(rawText, "\r\n", "\n")
	blocks := make([]string, 0)
	for _, block := range strings.Split(normalized, blockSeparator) {
		block = strings.TrimSpace(block)
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// mergeBlocks greedily joins consecutive blocks while the running word count stays under the
// threshold. A block is never split, so one long block still becomes a single section.
func (s *sectionSegmenter) mergeBlocks(blocks []string) []string {
	sections := make([]string, 0)
	var builder strings.Builder
	wordCount := 0

	for _, block := range blocks {
		blockWords := len(strings.Fields(block))
		if wordCount+blockWords < s.wordThreshold {
			if builder.Len() > 0 {
				builder.WriteString(blockSeparator)
			}
			builder.WriteString(block)
			wordCount += blockWords
			continue
		}

		if builder.Len() > 0 {
			sections = append(sections, builder.String())
		}
		builder.Reset()
		builder.WriteString(block)
		wordCount = blockWords
	}

	if builder.Len() > 0 {
		sections = append(sections, builder.String())
	}

	return sections
}
