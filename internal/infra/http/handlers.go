package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"insightd/internal/domain"

	"github.com/gin-gonic/gin"
)

type successEnvelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Total     *int64 `json:"total,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

type attendeeResponse struct {
	ID          int64  `json:"id"`
	CampaignID  string `json:"campaign_id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	dbMode := "no-db"
	if s.store != nil && s.store.DB != nil {
		dbMode = "db"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "mode": dbMode})
}

func (s *Server) handleListAttendees(c *gin.Context) {
	campaignID := c.Param("campaign_id")
	if !s.requireCampaignScope(c, campaignID) {
		return
	}
	if s.attendees == nil {
		writeServiceUnavailable(c)
		return
	}
	offset := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 0)

	attendees, total, err := s.attendees.List(c.Request.Context(), campaignID, offset, limit)
	if err != nil {
		s.writeStoreError(c, err)
		return
	}
	out := make([]attendeeResponse, 0, len(attendees))
	for _, a := range attendees {
		out = append(out, attendeeToResponse(a))
	}
	writeSuccess(c, out, &total)
}

func (s *Server) handleSearchAttendee(c *gin.Context) {
	campaignID := c.Param("campaign_id")
	if !s.requireCampaignScope(c, campaignID) {
		return
	}
	if s.attendees == nil {
		writeServiceUnavailable(c)
		return
	}
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, errorEnvelope{
			Success:   false,
			Message:   "email query parameter is required",
			ErrorCode: "VALIDATION_ERROR",
			Details:   []errorDetail{{Field: "email", Message: "email is required", Code: "REQUIRED"}},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	attendee, err := s.attendees.GetByEmail(c.Request.Context(), campaignID, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorEnvelope{
				Success:   false,
				Message:   "attendee not found",
				ErrorCode: "NOT_FOUND",
				Details:   []errorDetail{{Field: "email", Message: "no attendee with this email", Code: "NOT_FOUND"}},
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		s.writeStoreError(c, err)
		return
	}
	writeSuccess(c, attendeeToResponse(*attendee), nil)
}

func (s *Server) handleAttendeeSummary(c *gin.Context) {
	campaignID := c.Param("campaign_id")
	if !s.requireCampaignScope(c, campaignID) {
		return
	}
	if s.attendees == nil {
		writeServiceUnavailable(c)
		return
	}
	total, err := s.attendees.Summary(c.Request.Context(), campaignID)
	if err != nil {
		s.writeStoreError(c, err)
		return
	}
	writeSuccess(c, gin.H{"campaign_id": campaignID, "attendee_count": total}, nil)
}

func (s *Server) handleNoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorEnvelope{
		Success:   false,
		Message:   "route not found",
		ErrorCode: "NOT_FOUND",
		Details:   []errorDetail{{Field: "path", Message: "unknown route", Code: "NOT_FOUND"}},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// requireCampaignScope enforces the entitlement set attached by the
// middleware. An empty set is a valid outcome of authorization; the
// denial happens here, per campaign.
func (s *Server) requireCampaignScope(c *gin.Context, campaignID string) bool {
	authCtx, ok := authContextFrom(c)
	if !ok {
		// Authorization disabled.
		if s.engine == nil {
			return true
		}
		writeAuthError(c, http.StatusUnauthorized, "authorization failed",
			errorDetail{Field: "authorization", Message: "missing authorization context", Code: "ACCESS_DENIED"})
		return false
	}
	if !authCtx.CanAccessCampaign(campaignID) {
		writeAuthError(c, http.StatusForbidden, "campaign access denied",
			errorDetail{Field: "campaign_id", Message: "campaign is not in the accessible set", Code: "CAMPAIGN_FORBIDDEN"})
		return false
	}
	return true
}

func (s *Server) writeStoreError(c *gin.Context, err error) {
	s.log.WithError(err).Error("attendee query failed")
	if errors.Is(err, domain.ErrStoreUnavailable) {
		writeServiceUnavailable(c)
		return
	}
	c.JSON(http.StatusInternalServerError, errorEnvelope{
		Success:   false,
		Message:   "internal error",
		ErrorCode: "INTERNAL_ERROR",
		Details:   []errorDetail{{Field: "server", Message: "request could not be served", Code: "INTERNAL_ERROR"}},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeServiceUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, errorEnvelope{
		Success:   false,
		Message:   "store unavailable",
		ErrorCode: "STORE_UNAVAILABLE",
		Details:   []errorDetail{{Field: "server", Message: "database is not configured or unreachable", Code: "STORE_UNAVAILABLE"}},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeSuccess(c *gin.Context, data any, total *int64) {
	c.JSON(http.StatusOK, successEnvelope{
		Success:   true,
		Data:      data,
		Total:     total,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func attendeeToResponse(a domain.Attendee) attendeeResponse {
	return attendeeResponse{
		ID:          a.ID,
		CampaignID:  a.CampaignID,
		Email:       a.Email,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		CompanyName: a.CompanyName,
		JobTitle:    a.JobTitle,
		Industry:    a.Industry,
		Country:     a.Country,
		City:        a.City,
		State:       a.State,
	}
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
