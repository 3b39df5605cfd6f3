package main

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workincz/moderator/moderation"
)

type GenericStatus struct {
	Daemon  string `json:"daemon"`
	Status  string `json:"status"`
	Message string `json:"msg,omitempty"`
}

func (srv *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	var errorMessage string
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		errorMessage = fmt.Sprintf("%s", he.Message)
	}
	if code >= 500 {
		srv.logger.Warn("bouncer-http-internal-error", "err", err)
	}
	c.JSON(code, GenericStatus{Status: "error", Daemon: "bouncer", Message: errorMessage})
}

func (srv *Server) HandleHealthCheck(c echo.Context) error {
	return c.JSON(200, GenericStatus{Status: "ok", Daemon: "bouncer"})
}

type moderateContentRequest struct {
	ID          string            `json:"id"`
	ContentType string            `json:"contentType"`
	AuthorID    string            `json:"authorId"`
	Fields      map[string]string `json:"fields"`
}

func (srv *Server) HandleModerateContent(c echo.Context) error {
	var req moderateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ContentType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "contentType is required")
	}

	result := srv.engine.ProcessContent(c.Request().Context(), moderation.ContentRecord{
		ID:          req.ID,
		ContentType: req.ContentType,
		AuthorID:    req.AuthorID,
		Fields:      req.Fields,
	})
	return c.JSON(200, result)
}

type reportContentRequest struct {
	ContentID   string `json:"contentId"`
	ContentType string `json:"contentType"`
	ReporterID  string `json:"reporterId"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

func (srv *Server) HandleReportContent(c echo.Context) error {
	var req reportContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ContentID == "" || req.ReporterID == "" || req.Reason == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "contentId, reporterId, and reason are required")
	}
	if !srv.allowReport(req.ReporterID) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "report rate limit exceeded")
	}

	report := srv.engine.ReportContent(c.Request().Context(), req.ContentID, req.ContentType, req.ReporterID, req.Reason, req.Description)
	return c.JSON(201, report)
}

func (srv *Server) HandlePendingQueue(c echo.Context) error {
	entries, err := srv.engine.PendingQueue(c.Request().Context())
	if err != nil {
		return fmt.Errorf("reading pending queue: %w", err)
	}
	return c.JSON(200, entries)
}

type processQueueItemRequest struct {
	ModeratorID string `json:"moderatorId"`
	Action      string `json:"action"`
	Note        string `json:"note"`
}

func (srv *Server) HandleProcessQueueItem(c echo.Context) error {
	var req processQueueItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ModeratorID == "" || req.Action == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "moderatorId and action are required")
	}

	ok := srv.engine.ProcessQueueItem(c.Request().Context(), c.Param("itemID"), req.ModeratorID, req.Action, req.Note)
	if !ok {
		return echo.NewHTTPError(http.StatusConflict, "queue item unknown, already processed, or action not recognized")
	}
	return c.JSON(200, GenericStatus{Status: "ok", Daemon: "bouncer"})
}

func (srv *Server) HandleContentFlags(c echo.Context) error {
	flags, err := srv.engine.ContentFlags(c.Request().Context(), c.Param("contentID"))
	if err != nil {
		return fmt.Errorf("reading content flags: %w", err)
	}
	return c.JSON(200, map[string]any{"contentId": c.Param("contentID"), "flags": flags})
}

func (srv *Server) HandleContentHistory(c echo.Context) error {
	hist, err := srv.engine.ContentHistory(c.Request().Context(), c.Param("contentID"))
	if err != nil {
		return fmt.Errorf("reading content history: %w", err)
	}
	return c.JSON(200, hist)
}

func (srv *Server) HandleContentReports(c echo.Context) error {
	reports, err := srv.engine.ContentReports(c.Request().Context(), c.Param("contentID"))
	if err != nil {
		return fmt.Errorf("reading content reports: %w", err)
	}
	return c.JSON(200, reports)
}

func (srv *Server) HandleTrustScore(c echo.Context) error {
	userID := c.Param("userID")
	score := srv.engine.GetUserTrustScore(c.Request().Context(), userID)
	return c.JSON(200, map[string]any{"userId": userID, "score": score})
}

func (srv *Server) HandleEmployerRating(c echo.Context) error {
	rating, err := srv.engine.GetEmployerRating(c.Request().Context(), c.Param("employerID"))
	if err != nil {
		return fmt.Errorf("reading employer rating: %w", err)
	}
	if rating == nil {
		return echo.NewHTTPError(http.StatusNotFound, "employer has no reviews")
	}
	return c.JSON(200, rating)
}

type addReviewRequest struct {
	AuthorID string  `json:"authorId"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
}

func (srv *Server) HandleAddReview(c echo.Context) error {
	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.AuthorID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "authorId is required")
	}

	agg, result := srv.engine.AddEmployerReview(c.Request().Context(), c.Param("employerID"), req.AuthorID, req.Rating, req.Comment)
	if result.Rejected {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"rating": nil, "moderation": result})
	}
	return c.JSON(201, map[string]any{"rating": agg, "moderation": result})
}

type verifyEmployerRequest struct {
	Verified bool `json:"verified"`
}

func (srv *Server) HandleVerifyEmployer(c echo.Context) error {
	var req verifyEmployerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := srv.engine.VerifyEmployer(c.Request().Context(), c.Param("employerID"), req.Verified); err != nil {
		return fmt.Errorf("updating employer verification: %w", err)
	}
	return c.JSON(200, GenericStatus{Status: "ok", Daemon: "bouncer"})
}
