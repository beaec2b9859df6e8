package maintenance

import (
	"context"
)

type Service interface {
	// Queue fetches the technician's assigned requests with status buckets.
	Queue(ctx context.Context) (*QueueResp, error)

	// Start moves PENDING -> IN_PROGRESS; Complete moves IN_PROGRESS ->
	// COMPLETED. Illegal jumps are refused before any request is issued.
	// On success the whole queue is refetched, never patched in place.
	Start(ctx context.Context, maintenanceID int64) (*QueueResp, error)
	Complete(ctx context.Context, maintenanceID int64) (*QueueResp, error)
}
