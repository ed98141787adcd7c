package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"insightd/internal/domain"
)

const (
	defaultAttendeePageSize = 50
	maxAttendeePageSize     = 100

	summaryCacheTTL = 30 * time.Second
)

// SummaryCache memoizes attendee counts for a short window. Only derived
// read-side data goes through it; authorization state is never cached.
type SummaryCache interface {
	Get(ctx context.Context, key string) (int64, bool, error)
	Put(ctx context.Context, key string, value int64, ttl time.Duration) error
}

// AttendeeService serves campaign attendee reads. Authorization has already
// happened by the time it runs; it only enforces input validity.
type AttendeeService struct {
	attendees AttendeeRepository
	summaries SummaryCache
}

func NewAttendeeService(attendees AttendeeRepository, summaries SummaryCache) *AttendeeService {
	return &AttendeeService{attendees: attendees, summaries: summaries}
}

func (s *AttendeeService) List(ctx context.Context, campaignID string, offset, limit int) ([]domain.Attendee, int64, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return nil, 0, errors.New("campaign id cannot be empty")
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultAttendeePageSize
	}
	if limit > maxAttendeePageSize {
		limit = maxAttendeePageSize
	}
	attendees, err := s.attendees.ListByCampaign(ctx, campaignID, offset, limit)
	if err != nil {
		return nil, 0, storeErr("list attendees", err)
	}
	total, err := s.attendees.CountByCampaign(ctx, campaignID)
	if err != nil {
		return nil, 0, storeErr("count attendees", err)
	}
	return attendees, total, nil
}

func (s *AttendeeService) GetByEmail(ctx context.Context, campaignID, email string) (*domain.Attendee, error) {
	campaignID = strings.TrimSpace(campaignID)
	email = strings.TrimSpace(email)
	if campaignID == "" || email == "" {
		return nil, errors.New("campaign id and email are required")
	}
	attendee, err := s.attendees.GetByCampaignAndEmail(ctx, campaignID, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr("get attendee", err)
	}
	return attendee, nil
}

func (s *AttendeeService) Summary(ctx context.Context, campaignID string) (int64, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return 0, errors.New("campaign id cannot be empty")
	}
	cacheKey := "summary:" + campaignID
	if s.summaries != nil {
		if total, ok, err := s.summaries.Get(ctx, cacheKey); err == nil && ok {
			return total, nil
		}
	}
	total, err := s.attendees.CountByCampaign(ctx, campaignID)
	if err != nil {
		return 0, storeErr("count attendees", err)
	}
	if s.summaries != nil {
		// A failed cache write only costs the next call a recount.
		_ = s.summaries.Put(ctx, cacheKey, total, summaryCacheTTL)
	}
	return total, nil
}
