package mock_generator

// Fixture is the canned provider output replayed when the mock provider is enabled.
// Delays are in milliseconds.
type Fixture struct {
	Story              string             `json:"story"`
	StoryDelay         int                `json:"story_delay"`
	Illustrations      []MockIllustration `json:"illustrations"`
	Audio              string             `json:"audio"`
	AudioDelay         int                `json:"audio_delay"`
	RejectedCredential string             `json:"rejected_credential"`
}

// MockIllustration is replayed for one illustration call. Calls past the end of the list
// wrap around.
type MockIllustration struct {
	Image string `json:"image"`
	Fail  bool   `json:"fail"`
	Delay int    `json:"delay"`
}
