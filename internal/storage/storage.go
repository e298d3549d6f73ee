// Package storage archives generated purchase plans to S3-compatible
// object storage so the shop keeps an audit trail of what was suggested.
package storage

import "context"

// PlanArchive captures the minimal object operations the recommendation
// flow needs.
type PlanArchive interface {
	UploadPlan(ctx context.Context, key string, data []byte) error
	ListPlans(ctx context.Context, prefix string) ([]string, error)
}
