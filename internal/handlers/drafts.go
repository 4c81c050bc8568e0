package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"maternal-screening-server/internal/collector"
	"maternal-screening-server/internal/prediction"
	"maternal-screening-server/internal/utils"
)

// Draft navigation actions
const (
	ActionSave     = ""
	ActionNext     = "next"
	ActionPrevious = "previous"
)

// UpdateDraftRequest represents the request body for saving answers to a draft.
type UpdateDraftRequest struct {
	Token   string            `json:"token" binding:"required"`
	Answers map[string]string `json:"answers"`
	Action  string            `json:"action" binding:"omitempty,oneof=next previous"`
}

// SubmitDraftRequest represents the request body for submitting a draft.
type SubmitDraftRequest struct {
	Token string `json:"token" binding:"required"`
}

// DraftResponse carries the re-signed draft and the collector state.
type DraftResponse struct {
	Token string          `json:"token"`
	State collector.State `json:"state"`
}

// StartDraft issues an empty draft positioned on the first section.
func (h *AssessmentHandler[F]) StartDraft(c *gin.Context) {
	h.respondDraft(c, collector.New(h.layout), true)
}

// UpdateDraft applies answers to a draft and optionally moves between
// sections. Moving forward requires the current section to be complete.
func (h *AssessmentHandler[F]) UpdateDraft(c *gin.Context) {
	var req UpdateDraftRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	col, err := collector.ResumeDraft(h.drafts, h.layout, req.Token)
	if err != nil {
		h.respondCollectorError(c, err)
		return
	}
	if err := col.SetAll(req.Answers); err != nil {
		h.respondCollectorError(c, err)
		return
	}

	switch req.Action {
	case ActionNext:
		err = col.Next()
	case ActionPrevious:
		err = col.Previous()
	}
	if err != nil {
		h.respondCollectorError(c, err)
		return
	}

	action := req.Action
	if action == ActionSave {
		action = "save"
	}
	h.metrics.ObserveDraft(string(h.layout.Kind), action)
	h.respondDraft(c, col, false)
}

// SubmitDraft sends a complete draft to the prediction service.
func (h *AssessmentHandler[F]) SubmitDraft(c *gin.Context) {
	var req SubmitDraftRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	col, err := collector.ResumeDraft(h.drafts, h.layout, req.Token)
	if err != nil {
		h.respondCollectorError(c, err)
		return
	}

	// col is rebuilt from the token on every request, so the busy guard only
	// covers this call; repeated submissions of one token each reach the service.
	var result *prediction.Result
	err = col.Submit(c.Request.Context(), func(_ context.Context, form F) error {
		var ferr error
		result, ferr = h.forward(c, form)
		return ferr
	})
	if err != nil {
		h.respondCollectorError(c, err)
		return
	}
	utils.Success(c, result)
}

func (h *AssessmentHandler[F]) respondDraft(c *gin.Context, col *collector.Collector[F], created bool) {
	token, err := collector.IssueDraft(h.drafts, col)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to issue draft")
		utils.InternalServerError(c, "Failed to save form progress")
		return
	}
	resp := DraftResponse{Token: token, State: col.State()}
	if created {
		utils.Created(c, resp)
		return
	}
	utils.Success(c, resp)
}
