package outbound

import "github.com/0xlimon/hyperbolic-story-creator/domain"

type SnapshotPublisherPort interface {
	Publish(snapshot domain.StorySnapshot)
}
