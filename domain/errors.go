package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrCredentialRequired = errors.New("please enter your API key first")
	ErrEmptyTopic         = errors.New("story topic is required")
	ErrStaleGeneration    = errors.New("generation was superseded by a newer story")
	ErrInvalidTransition  = errors.New("invalid story state transition")
	ErrNoStory            = errors.New("no story has been generated yet")
	ErrStoryIncomplete    = errors.New("wait for story completion")
	ErrUnknownModel       = errors.New("unknown model")
	ErrUnknownLanguage    = errors.New("unknown narration language")
	ErrUnknownSpeaker     = errors.New("unknown narration speaker")
)

type GenerationKind string

const (
	NarrativeGeneration    GenerationKind = "narrative"
	IllustrationGeneration GenerationKind = "illustration"
	NarrationGeneration    GenerationKind = "narration"
)

// GenerationError is returned when the provider rejects or cannot serve a generation request.
// StatusCode is zero when the failure did not come with an HTTP error status.
type GenerationError struct {
	Kind       GenerationKind
	StatusCode int
	Err        error
}

func NewGenerationError(kind GenerationKind, statusCode int, err error) *GenerationError {
	return &GenerationError{
		Kind:       kind,
		StatusCode: statusCode,
		Err:        err,
	}
}

func (e *GenerationError) Error() string {
	return e.Message()
}

// Message is the user-facing text for the failed generation.
func (e *GenerationError) Message() string {
	switch e.Kind {
	case NarrativeGeneration:
		return "Failed to generate story. Please check your API key and try again."
	case IllustrationGeneration:
		return "Failed to generate image. Please check your API key and try again."
	case NarrationGeneration:
		return "Failed to generate audio. Please check your API key and try again."
	default:
		return fmt.Sprintf("Failed to generate %s.", e.Kind)
	}
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// CredentialProblem reports whether the provider refused the credential itself.
func (e *GenerationError) CredentialProblem() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsCredentialProblem reports whether err means the user has to (re)enter the credential.
func IsCredentialProblem(err error) bool {
	if errors.Is(err, ErrCredentialRequired) {
		return true
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.CredentialProblem()
	}
	return false
}
