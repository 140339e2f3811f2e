package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/barcraft/backoffice/internal/core/domain"
	"github.com/barcraft/backoffice/internal/core/ports"
	"github.com/barcraft/backoffice/internal/pkg/metrics"
)

// SignupDedup abstracts the newsletter idempotency store (Redis).
type SignupDedup interface {
	IsDuplicate(ctx context.Context, email string) (bool, error)
	Mark(ctx context.Context, email string) error
}

type leadService struct {
	repo  ports.LeadRepository
	dedup SignupDedup
	log   zerolog.Logger
}

// NewLeadService returns a LeadService implementation.
func NewLeadService(repo ports.LeadRepository, dedup SignupDedup, log zerolog.Logger) ports.LeadService {
	return &leadService{repo: repo, dedup: dedup, log: log}
}

// Process validates, deduplicates, and persists a single captured lead.
func (s *leadService) Process(ctx context.Context, in ports.LeadInput) error {
	start := time.Now()
	kind := domain.LeadKind(in.Kind)

	if !domain.ValidLeadKind(kind) || in.Email == "" {
		metrics.LeadsErrorsTotal.WithLabelValues("invalid_lead").Inc()
		return fmt.Errorf("process lead: %w (kind %q)", domain.ErrInvalidLead, in.Kind)
	}

	// Newsletter signups are idempotent per email, so repeats are skipped.
	if kind == domain.LeadNewsletter && s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, in.Email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", in.Email).Msg("dedup check failed, processing anyway")
		} else if isDup {
			s.log.Debug().Str("email", in.Email).Msg("duplicate newsletter signup skipped")
			return nil
		}
		if markErr := s.dedup.Mark(ctx, in.Email); markErr != nil {
			s.log.Warn().Err(markErr).Str("email", in.Email).Msg("failed to set dedup key")
		}
	}

	lead := &domain.Lead{
		ID:        uuid.NewString(),
		Kind:      kind,
		Brand:     in.Brand,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		PartySize: in.PartySize,
		CreatedAt: time.Now().UTC(),
	}
	if !in.EventDate.IsZero() {
		d := in.EventDate
		lead.EventDate = &d
	}

	if err := s.repo.Insert(ctx, lead); err != nil {
		metrics.LeadsErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process lead: %w", err)
	}

	metrics.LeadsProcessedTotal.WithLabelValues(in.Kind).Inc()
	metrics.LeadProcessingDuration.WithLabelValues(in.Kind).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("kind", in.Kind).
		Str("brand", in.Brand).
		Msg("lead processed")

	return nil
}

func (s *leadService) List(ctx context.Context, kind string) ([]domain.Lead, error) {
	k := domain.LeadKind(kind)
	if kind != "" && !domain.ValidLeadKind(k) {
		return nil, fmt.Errorf("list leads: %w (kind %q)", domain.ErrInvalidLead, kind)
	}
	return s.repo.List(ctx, k)
}
