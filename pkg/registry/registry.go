// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	apperrors "mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/metrics"
)

// ActivityRegistry holds the full in-memory set of activities, keyed by name.
// The key set is fixed after construction; only participant rosters mutate.
// A single RWMutex keeps each operation a one-shot check-then-mutate step.
type ActivityRegistry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
	logger     logger.Logger
}

// New builds a registry seeded with the default school activities.
func New(log logger.Logger) *ActivityRegistry {
	return NewWithActivities(DefaultActivities(), log)
}

// NewWithActivities builds a registry from an explicit seed set. The seed map
// is copied so callers cannot mutate registry state behind the lock.
func NewWithActivities(seed map[string]Activity, log logger.Logger) *ActivityRegistry {
	activities := make(map[string]*Activity, len(seed))
	for name, act := range seed {
		copied := act
		copied.Participants = append([]string(nil), act.Participants...)
		activities[name] = &copied
	}
	return &ActivityRegistry{
		activities: activities,
		logger:     log.WithFields(map[string]interface{}{"component": "registry"}),
	}
}

// LoadFromFile reads a JSON seed document, validates it against the seed
// schema and builds a registry from it.
func LoadFromFile(path string, log logger.Logger) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if err := validateSeed(raw); err != nil {
		return nil, err
	}

	var seed map[string]Activity
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	log.Info("loaded activity seed file", map[string]interface{}{
		"path":       path,
		"activities": len(seed),
	})
	return NewWithActivities(seed, log), nil
}

// ListAll returns a snapshot of every activity with its full roster. The
// snapshot is deep-copied, so callers never observe later mutations.
func (r *ActivityRegistry) ListAll() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, act := range r.activities {
		copied := *act
		copied.Participants = append([]string(nil), act.Participants...)
		out[name] = copied
	}
	return out
}

// Signup appends email to the activity's roster. It fails with
// ACTIVITY_NOT_FOUND for an unknown activity and ALREADY_SIGNED_UP for a
// duplicate email. max_participants is stored and served but not enforced,
// matching the service contract.
func (r *ActivityRegistry) Signup(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[activityName]
	if !ok {
		metrics.SignupsTotal.WithLabelValues("not_found").Inc()
		return apperrors.NewActivityNotFoundError(activityName)
	}

	for _, p := range act.Participants {
		if p == email {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
			return apperrors.NewAlreadySignedUpError(email, activityName)
		}
	}

	act.Participants = append(act.Participants, email)
	metrics.SignupsTotal.WithLabelValues("success").Inc()
	r.logger.Info("student signed up", map[string]interface{}{
		"activity":     activityName,
		"email":        email,
		"participants": len(act.Participants),
	})
	return nil
}

// Unregister removes email from the activity's roster, preserving the order
// of the remaining participants. It fails with ACTIVITY_NOT_FOUND for an
// unknown activity and NOT_REGISTERED when the email is absent.
func (r *ActivityRegistry) Unregister(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[activityName]
	if !ok {
		metrics.UnregistersTotal.WithLabelValues("not_found").Inc()
		return apperrors.NewActivityNotFoundError(activityName)
	}

	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			metrics.UnregistersTotal.WithLabelValues("success").Inc()
			r.logger.Info("student unregistered", map[string]interface{}{
				"activity":     activityName,
				"email":        email,
				"participants": len(act.Participants),
			})
			return nil
		}
	}

	metrics.UnregistersTotal.WithLabelValues("not_registered").Inc()
	return apperrors.NewNotRegisteredError(email, activityName)
}
