package ports

import (
	"context"

	"github.com/99minutos/returns-dashboard/internal/core/domain"
)

// Payload is the primary export document: an ordered list of records plus
// optional summary fields written by the export pipeline.
type Payload struct {
	GeneratedAt string          `json:"generated_at"`
	Tag         string          `json:"tag"`
	Count       *int            `json:"count"`
	Items       []domain.Record `json:"items"`
}

// Metadata is the small companion document carrying the same summary
// fields. When present, its values take precedence over the payload's own
// (it is written last by the export pipeline, so it is considered fresher).
type Metadata struct {
	GeneratedAt string `json:"generated_at"`
	Count       *int   `json:"count"`
}

// ExportSource fetches the two JSON documents produced by the export
// pipeline.
type ExportSource interface {
	// FetchPayload retrieves the primary export document. Any transport,
	// status or decode failure is returned as an error.
	FetchPayload(ctx context.Context) (*Payload, error)
	// FetchMetadata retrieves the companion metadata document. It returns
	// (nil, nil) when no metadata endpoint is configured; callers must
	// tolerate a nil Metadata.
	FetchMetadata(ctx context.Context) (*Metadata, error)
}
