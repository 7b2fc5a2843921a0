// Package access decides whether a seller's listings and auctions are visible.
package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"car-rental-core/internal/models"
	"car-rental-core/internal/rentalerrors"
	"car-rental-core/utils"
)

// Config replaces the process-wide trial/subscription toggles
type Config struct {
	// Enforce turns the gate on. When false every owner has access.
	Enforce bool
	// TrialEnabled lets an owner with a running trial through.
	TrialEnabled bool
}

// AccountSource loads billing state for an owner
type AccountSource interface {
	GetOwnerAccount(ctx context.Context, ownerID string) (models.OwnerAccount, error)
}

// Checker is the predicate consumed by the engines
type Checker interface {
	OwnerHasAccess(ctx context.Context, ownerID string, now time.Time) (bool, error)
}

// Gate evaluates owner access from account state and Config
type Gate struct {
	cfg      Config
	accounts AccountSource
}

// NewGate creates a Gate
func NewGate(cfg Config, accounts AccountSource) *Gate {
	return &Gate{cfg: cfg, accounts: accounts}
}

// OwnerHasAccess reports whether ownerID currently has an active subscription
// or, when trials are enabled, a running trial. An owner without an account
// record has no access. Storage failures are returned as errors.
func (g *Gate) OwnerHasAccess(ctx context.Context, ownerID string, now time.Time) (bool, error) {
	if !g.cfg.Enforce {
		return true, nil
	}

	account, err := g.accounts.GetOwnerAccount(ctx, ownerID)
	if errors.Is(err, rentalerrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("access: failed to load account for owner %s: %w", ownerID, err)
	}

	ok := Evaluate(g.cfg, account, now)
	if !ok {
		utils.Debug("access: owner has no active plan", map[string]any{"owner_id": ownerID})
	}
	return ok, nil
}

// Evaluate is the pure rule behind the gate
func Evaluate(cfg Config, account models.OwnerAccount, now time.Time) bool {
	if !cfg.Enforce {
		return true
	}
	if account.Suspended {
		return false
	}
	if account.SubscriptionEndsAt != nil && now.Before(*account.SubscriptionEndsAt) {
		return true
	}
	if cfg.TrialEnabled && account.TrialEndsAt != nil && now.Before(*account.TrialEndsAt) {
		return true
	}
	return false
}

// AllowAll is a Checker that grants access to everyone
type AllowAll struct{}

func (AllowAll) OwnerHasAccess(context.Context, string, time.Time) (bool, error) {
	return true, nil
}
