package services

import (
	"strings"
	"testing"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestSectionSegmenter_Example(t *testing.T) {
	segmenter := NewSectionSegmenter(DefaultSectionWordThreshold, DefaultMaxSections)

	got := segmenter.Segment("My Tale\n\nOnce upon a time.\n\nThe end.")
	want := []string{"My Tale", "Once upon a time.\n\nThe end."}
	if len(got) != len(want) {
		t.Fatalf("Segment() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Segment()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSectionSegmenter_TitleIsFirstLine(t *testing.T) {
	segmenter := NewSectionSegmenter(0, 0)

	got := segmenter.Segment("  The Lighthouse\nA story in three parts  \n\nIt was dark.")
	if got[0] != "The Lighthouse" {
		t.Fatalf("title = %q", got[0])
	}
	if len(got) != 2 || got[1] != "It was dark." {
		t.Fatalf("sections = %q", got[1:])
	}
}

func TestSectionSegmenter_Threshold(t *testing.T) {
	segmenter := NewSectionSegmenter(DefaultSectionWordThreshold, DefaultMaxSections)

	tests := []struct {
		name       string
		blockWords []int
		wantWords  []int
	}{
		{name: "small blocks merge", blockWords: []int{100, 100}, wantWords: []int{200}},
		{name: "reaching the threshold flushes", blockWords: []int{100, 100, 100, 100}, wantWords: []int{200, 200}},
		{name: "oversized block stays whole", blockWords: []int{350}, wantWords: []int{350}},
		{name: "oversized block between small ones", blockWords: []int{50, 350, 20}, wantWords: []int{50, 350, 20}},
		{name: "just under the threshold", blockWords: []int{150, 149}, wantWords: []int{299}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := []string{"Title"}
			for _, n := range tt.blockWords {
				blocks = append(blocks, words(n))
			}

			got := segmenter.Segment(strings.Join(blocks, "\n\n"))[1:]
			if len(got) != len(tt.wantWords) {
				t.Fatalf("got %d sections, want %d", len(got), len(tt.wantWords))
			}
			for i, section := range got {
				if n := len(strings.Fields(section)); n != tt.wantWords[i] {
					t.Fatalf("section %d has %d words, want %d", i, n, tt.wantWords[i])
				}
			}
		})
	}
}

func TestSectionSegmenter_Truncation(t *testing.T) {
	segmenter := NewSectionSegmenter(DefaultSectionWordThreshold, DefaultMaxSections)

	blocks := []string{"Title"}
	for i := 0; i < 10; i++ {
		blocks = append(blocks, words(299))
	}

	got := segmenter.Segment(strings.Join(blocks, "\n\n"))
	if len(got) != 1+DefaultMaxSections {
		t.Fatalf("got %d entries, want %d", len(got), 1+DefaultMaxSections)
	}
	for i, section := range got[1:] {
		if strings.Contains(section, "\n\n") {
			t.Fatalf("section %d merged dropped blocks", i)
		}
	}
}

func TestSectionSegmenter_EntryCountBounds(t *testing.T) {
	segmenter := NewSectionSegmenter(DefaultSectionWordThreshold, DefaultMaxSections)

	for k := 1; k <= 12; k++ {
		blocks := []string{"Heading line\nsubtitle"}
		for i := 1; i < k; i++ {
			blocks = append(blocks, words(40*i))
		}
		got := segmenter.Segment(strings.Join(blocks, "\n\n"))
		if len(got) < 1 || len(got) > 5 {
			t.Fatalf("k=%d: got %d entries", k, len(got))
		}
		if got[0] != "Heading line" {
			t.Fatalf("k=%d: title = %q", k, got[0])
		}
	}
}

func TestSectionSegmenter_DegenerateInput(t *testing.T) {
	segmenter := NewSectionSegmenter(DefaultSectionWordThreshold, DefaultMaxSections)

	for _, raw := range []string{"", "   \n\n \t\n\n"} {
		got := segmenter.Segment(raw)
		if len(got) != 1 || got[0] != "" {
			t.Fatalf("Segment(%q) = %q, want [\"\"]", raw, got)
		}
	}

	got := segmenter.Segment("Just one block\nwith two lines")
	if len(got) != 1 || got[0] != "Just one block" {
		t.Fatalf("single block = %q", got)
	}
}

func TestSectionSegmenter_WindowsLineEndings(t *testing.T) {
	segmenter := NewSectionSegmenter(DefaultSectionWordThreshold, DefaultMaxSections)

	got := segmenter.Segment("Title\r\n\r\nFirst.\r\n\r\nSecond.")
	if len(got) != 2 || got[1] != "First.\n\nSecond." {
		t.Fatalf("Segment() = %q", got)
	}
}
