package service

import (
	"context"
	"fmt"
	"time"

	"pharmatrack-backend/internal/cache"
	"pharmatrack-backend/internal/logger"
	"pharmatrack-backend/internal/repository"

	"github.com/google/uuid"
)

// AlertService is the expiry-alert dispatcher. One run scans all tenants
// with qualifying unnotified items and delegates each tenant to the
// inventory service's public NotifyExpiring entry point, so cache eviction
// and batch marking always go through the same path as every other write.
type AlertService struct {
	drugService DrugServiceInterface
	drugRepo    repository.DrugRepositoryInterface
	store       cache.Store
	soonWindow  time.Duration
	sendTimeout time.Duration
	now         func() time.Time
}

// Ensure AlertService implements AlertServiceInterface
var _ AlertServiceInterface = (*AlertService)(nil)

// DefaultHorizon asks SendAlertsForTenant to use the configured soon
// window. A zero horizon is meaningful on its own: it restricts the alert
// to items already due.
const DefaultHorizon time.Duration = -1

// NewAlertService creates a new AlertService. soonWindow is the scheduled
// run's cutoff horizon: items with expires_at <= now + soonWindow qualify.
// sendTimeout bounds each tenant's send individually; the batch as a whole
// is unbounded so a slow tenant never eats the next one's budget. Zero
// disables the per-send bound.
func NewAlertService(
	drugService DrugServiceInterface,
	drugRepo repository.DrugRepositoryInterface,
	store cache.Store,
	soonWindow time.Duration,
	sendTimeout time.Duration,
) *AlertService {
	if soonWindow <= 0 {
		soonWindow = 30 * 24 * time.Hour
	}
	return &AlertService{
		drugService: drugService,
		drugRepo:    drugRepo,
		store:       store,
		soonWindow:  soonWindow,
		sendTimeout: sendTimeout,
		now:         time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *AlertService) WithClock(now func() time.Time) *AlertService {
	s.now = now
	return s
}

// BatchAlertResult reports one scheduled dispatcher run
type BatchAlertResult struct {
	OwnersScanned int       `json:"owners_scanned"`
	Sent          int       `json:"sent"`
	Skipped       int       `json:"skipped"`
	Failed        int       `json:"failed"`
	Cutoff        time.Time `json:"cutoff"`
}

// SendAlertsForTenant is the on-demand variant: one tenant, caller-supplied
// horizon, errors propagate to the caller. Pass DefaultHorizon for the
// configured soon window; an explicit zero means "already due only".
func (s *AlertService) SendAlertsForTenant(ctx context.Context, ownerID uuid.UUID, horizon time.Duration) (*AlertResult, error) {
	if horizon < 0 {
		horizon = s.soonWindow
	}
	cutoff := s.now().Add(horizon)
	return s.drugService.NotifyExpiring(ctx, ownerID, cutoff)
}

// SendAlertsForAllTenants is the scheduled variant. Failures are isolated
// per owner: one tenant's transport error is logged and the run continues
// for everyone else. Re-running with no intervening state change is a
// no-op in effect because sent items carry the notified flag.
func (s *AlertService) SendAlertsForAllTenants(ctx context.Context) (*BatchAlertResult, error) {
	log := logger.New().WithField("job", "expiry-alerts")
	cutoff := s.now().Add(s.soonWindow)

	ownerIDs, err := s.drugRepo.FindOwnersWithUnnotified(cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for expiring drugs: %w", err)
	}

	result := &BatchAlertResult{OwnersScanned: len(ownerIDs), Cutoff: cutoff}
	for _, ownerID := range ownerIDs {
		res, err := s.notifyOwner(ctx, ownerID, cutoff)
		if err != nil {
			result.Failed++
			log.WithField("owner_id", ownerID.String()).Errorf("alert send failed: %v", err)
			continue
		}
		if res.Sent {
			result.Sent++
		} else {
			result.Skipped++
			log.WithField("owner_id", ownerID.String()).Debugf("owner skipped: %s", res.SkippedReason)
		}
	}

	// The batch is the one cross-tenant write path; finish with a global
	// flush so no node serves results computed before the run.
	if result.Sent > 0 {
		if err := s.store.Flush(ctx); err != nil {
			return result, fmt.Errorf("alert run completed but cache flush failed: %w", err)
		}
	}

	log.WithFields(map[string]interface{}{
		"owners":  result.OwnersScanned,
		"sent":    result.Sent,
		"skipped": result.Skipped,
		"failed":  result.Failed,
	}).Info("expiry alert run completed")

	return result, nil
}

// notifyOwner runs one tenant's compose-send-mark unit under its own send
// deadline. Each owner gets a fresh budget; a slow send times out that
// tenant alone instead of cancelling everyone scheduled after it.
func (s *AlertService) notifyOwner(ctx context.Context, ownerID uuid.UUID, cutoff time.Time) (*AlertResult, error) {
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}
	return s.drugService.NotifyExpiring(ctx, ownerID, cutoff)
}
