package outbound

import "context"

// CredentialStorePort holds the single provider credential. Get returns an empty string
// when nothing has been saved.
type CredentialStorePort interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, credential string) error
	Delete(ctx context.Context) error
}
