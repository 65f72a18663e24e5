package domain

import "fmt"

type EventKind string

const (
	EventSubmitted             EventKind = "submitted"
	EventNarrativeReady        EventKind = "narrative_ready"
	EventNarrativeFailed       EventKind = "narrative_failed"
	EventIllustrationSucceeded EventKind = "illustration_succeeded"
	EventIllustrationFailed    EventKind = "illustration_failed"
	EventSectionSkipped        EventKind = "section_skipped"
)

// Event is an input to the story state machine. Token identifies the generation the
// event belongs to; only EventSubmitted may introduce a new token.
type Event struct {
	Kind     EventKind
	Token    string
	Segments []string
	Index    int
	Image    string
	Err      error
}

func Submitted(token string) Event {
	return Event{Kind: EventSubmitted, Token: token}
}

func NarrativeReady(token string, segments []string) Event {
	return Event{Kind: EventNarrativeReady, Token: token, Segments: segments}
}

func NarrativeFailed(token string, err error) Event {
	return Event{Kind: EventNarrativeFailed, Token: token, Err: err}
}

func IllustrationSucceeded(token string, index int, image string) Event {
	return Event{Kind: EventIllustrationSucceeded, Token: token, Index: index, Image: image}
}

func IllustrationFailed(token string, index int, err error) Event {
	return Event{Kind: EventIllustrationFailed, Token: token, Index: index, Err: err}
}

func SectionSkipped(token string, index int) Event {
	return Event{Kind: EventSectionSkipped, Token: token, Index: index}
}

// Machine is the story lifecycle:
//
//	Idle -> GeneratingNarrative -> IllustratingSection(cursor)* -> Complete
//
// A narrative failure returns to Idle. Submitting from any state starts a new generation
// and supersedes the previous one. Apply validates an event fully before mutating, so a
// rejected event leaves the machine untouched.
type Machine struct {
	token   string
	state   StoryState
	story   *Story
	cursor  int
	version int
	err     error
}

func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

func (m *Machine) Token() string {
	return m.token
}

func (m *Machine) State() StoryState {
	return m.state
}

func (m *Machine) Cursor() int {
	return m.cursor
}

// Current returns the section awaiting illustration.
func (m *Machine) Current() (index int, section string, ok bool) {
	if m.state != StateIllustratingSection {
		return 0, "", false
	}
	return m.cursor, m.story.Sections[m.cursor], true
}

// Story returns the live story, nil before a narrative has been segmented.
func (m *Machine) Story() *Story {
	return m.story
}

func (m *Machine) Apply(ev Event) error {
	if ev.Kind == EventSubmitted {
		if ev.Token == "" || ev.Token == m.token {
			return fmt.Errorf("%w: submission needs a fresh token", ErrInvalidTransition)
		}
		m.token = ev.Token
		m.state = StateGeneratingNarrative
		m.story = nil
		m.cursor = 0
		m.err = nil
		m.version++
		return nil
	}

	if ev.Token != m.token {
		return ErrStaleGeneration
	}

	switch ev.Kind {
	case EventNarrativeReady:
		if m.state != StateGeneratingNarrative {
			return m.invalid(ev)
		}
		m.story = NewStory(ev.Segments)
		m.cursor = 0
		m.state = StateIllustratingSection
		m.completeIfDone()
	case EventNarrativeFailed:
		if m.state != StateGeneratingNarrative {
			return m.invalid(ev)
		}
		m.state = StateIdle
		m.err = ev.Err
	case EventIllustrationSucceeded:
		if m.state != StateIllustratingSection || ev.Index != m.cursor || m.story.Failed[m.cursor] {
			return m.invalid(ev)
		}
		m.story.Images[m.cursor] = ev.Image
		m.cursor++
		m.completeIfDone()
	case EventIllustrationFailed:
		if m.state != StateIllustratingSection || ev.Index != m.cursor || m.story.Failed[m.cursor] {
			return m.invalid(ev)
		}
		m.story.Failed[m.cursor] = true
	case EventSectionSkipped:
		if m.state != StateIllustratingSection || ev.Index != m.cursor || !m.story.Failed[m.cursor] {
			return m.invalid(ev)
		}
		m.cursor++
		m.completeIfDone()
	default:
		return m.invalid(ev)
	}

	m.version++
	return nil
}

func (m *Machine) completeIfDone() {
	if m.cursor >= len(m.story.Sections) {
		m.state = StateComplete
	}
}

func (m *Machine) invalid(ev Event) error {
	return fmt.Errorf("%w: %s in state %s at cursor %d (event index %d)", ErrInvalidTransition, ev.Kind, m.state, m.cursor, ev.Index)
}

// Snapshot returns a deep copy safe to hand to readers.
func (m *Machine) Snapshot() StorySnapshot {
	snapshot := StorySnapshot{
		Token:    m.token,
		Version:  m.version,
		State:    m.state,
		Cursor:   m.cursor,
		Sections: []string{},
		Images:   []string{},
		Failed:   []int{},
	}
	if m.err != nil {
		snapshot.Error = m.err.Error()
		snapshot.CredentialRequired = IsCredentialProblem(m.err)
	}
	if m.story == nil {
		return snapshot
	}

	snapshot.Title = m.story.Title
	snapshot.Sections = append(snapshot.Sections, m.story.Sections...)
	snapshot.Images = append(snapshot.Images, m.story.Images...)
	for i, failed := range m.story.Failed {
		if failed {
			snapshot.Failed = append(snapshot.Failed, i)
		}
	}
	snapshot.Revealed = min(m.cursor+1, len(m.story.Sections))
	return snapshot
}
