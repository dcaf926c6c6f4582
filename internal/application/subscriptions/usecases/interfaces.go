package usecases

import (
	"context"

	"github.com/google/uuid"

	"liman/internal/domain/subscriptions"
)

// ChoiceCache caches the derived auto-apply choice list per customer
// agreement. A miss returns (nil, nil).
type ChoiceCache interface {
	// GetChoices returns the cached choice list for an agreement, or nil on miss.
	GetChoices(ctx context.Context, agreementUUID uuid.UUID) (*subscriptions.ChoiceList, error)
	// SetChoices stores the choice list for an agreement.
	SetChoices(ctx context.Context, agreementUUID uuid.UUID, list subscriptions.ChoiceList) error
	// InvalidateChoices drops the cached choice list for an agreement, forcing
	// re-derivation on next access.
	InvalidateChoices(ctx context.Context, agreementUUID uuid.UUID) error
}
