package worker

import (
	"context"
	"encoding/json"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/model"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/repository"

	"github.com/rs/zerolog/log"
)

// AuditWorker persists audit-trail events from QueueAudit.
// The trail is append-only; writes that keep failing end up in the DLQ.
type AuditWorker struct {
	repo repository.AuditRepository
}

func NewAuditWorker(repo repository.AuditRepository) *AuditWorker {
	return &AuditWorker{repo: repo}
}

// Process stores one audit event. Returning an error sends the job to the DLQ.
func (w *AuditWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var evt model.AuditEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		log.Error().Err(err).Msg("audit_worker: invalid payload")
		return err
	}
	if err := w.repo.Create(ctx, &evt); err != nil {
		log.Error().Err(err).Uint("employee_id", evt.EmployeeID).Msg("audit_worker: failed to persist event")
		return err
	}
	log.Debug().
		Str("action", evt.Action).
		Uint("employee_id", evt.EmployeeID).
		Str("performed_by", evt.PerformedBy).
		Msg("audit_worker: event recorded")
	return nil
}
