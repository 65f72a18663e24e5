package domain

import "strings"

type StoryState string

const (
	StateIdle                StoryState = "idle"
	StateGeneratingNarrative StoryState = "generating_narrative"
	StateIllustratingSection StoryState = "illustrating_section"
	StateComplete            StoryState = "complete"
)

const DefaultStoryTitle = "Generated Story"

// Story is the live illustrated story. Images and Failed are index aligned with Sections;
// an empty image is the unset sentinel.
type Story struct {
	Title    string
	Sections []string
	Images   []string
	Failed   []bool
}

// NewStory builds a story from segmenter output: the title followed by the content sections.
func NewStory(segments []string) *Story {
	title := ""
	var sections []string
	if len(segments) > 0 {
		title = strings.TrimSpace(segments[0])
		sections = append(sections, segments[1:]...)
	}
	if title == "" {
		title = DefaultStoryTitle
	}
	return &Story{
		Title:    title,
		Sections: sections,
		Images:   make([]string, len(sections)),
		Failed:   make([]bool, len(sections)),
	}
}

// FullText is the text read out by narration.
func (s *Story) FullText() string {
	return strings.Join(append([]string{s.Title}, s.Sections...), "\n\n")
}

type StorySnapshot struct {
	Token              string     `json:"token"`
	Version            int        `json:"version"`
	State              StoryState `json:"state"`
	Title              string     `json:"title"`
	Sections           []string   `json:"sections"`
	Images             []string   `json:"images"`
	Failed             []int      `json:"failed"`
	Cursor             int        `json:"cursor"`
	Revealed           int        `json:"revealed"`
	Error              string     `json:"error,omitempty"`
	CredentialRequired bool       `json:"credential_required,omitempty"`
}

// Complete reports whether every section has been through illustration.
func (s StorySnapshot) Complete() bool {
	return s.State == StateComplete
}

// HasImage reports whether the illustration for section i has arrived.
func (s StorySnapshot) HasImage(i int) bool {
	return i >= 0 && i < len(s.Images) && s.Images[i] != ""
}
