package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"maternal-screening-server/internal/collector"
	"maternal-screening-server/internal/mapper"
	"maternal-screening-server/internal/metrics"
	"maternal-screening-server/internal/middleware"
	"maternal-screening-server/internal/models"
	"maternal-screening-server/internal/prediction"
	"maternal-screening-server/internal/utils"
)

// Predictor forwards a mapped record to the prediction service.
type Predictor interface {
	Predict(ctx context.Context, kind models.Kind, payload any) (*prediction.Result, error)
}

// AssessmentHandler serves one assessment kind: direct submissions, the form
// layout and signed drafts.
type AssessmentHandler[F any] struct {
	layout         collector.Layout[F]
	convert        func(F) any
	failureMessage string
	predictor      Predictor
	drafts         *collector.DraftSigner
	logger         zerolog.Logger
	metrics        *metrics.Metrics
}

// NewAssessmentHandler creates an AssessmentHandler.
func NewAssessmentHandler[F any](
	layout collector.Layout[F],
	convert func(F) any,
	failureMessage string,
	predictor Predictor,
	drafts *collector.DraftSigner,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *AssessmentHandler[F] {
	return &AssessmentHandler[F]{
		layout:         layout,
		convert:        convert,
		failureMessage: failureMessage,
		predictor:      predictor,
		drafts:         drafts,
		logger:         logger.With().Str("kind", string(layout.Kind)).Logger(),
		metrics:        m,
	}
}

// NewHealthRiskHandler wires the maternal health risk assessment.
func NewHealthRiskHandler(predictor Predictor, drafts *collector.DraftSigner, logger zerolog.Logger, m *metrics.Metrics) *AssessmentHandler[models.HealthRiskForm] {
	return NewAssessmentHandler(
		collector.HealthRiskLayout(),
		func(f models.HealthRiskForm) any { return mapper.ConvertHealthRisk(f) },
		"Failed to process health risk assessment",
		predictor, drafts, logger, m,
	)
}

// NewDepressionHandler wires the depression screening.
func NewDepressionHandler(predictor Predictor, drafts *collector.DraftSigner, logger zerolog.Logger, m *metrics.Metrics) *AssessmentHandler[models.DepressionForm] {
	return NewAssessmentHandler(
		collector.DepressionLayout(),
		func(f models.DepressionForm) any { return mapper.ConvertDepression(f) },
		"Failed to process depression screening",
		predictor, drafts, logger, m,
	)
}

// Kind returns the assessment kind served by the handler.
func (h *AssessmentHandler[F]) Kind() models.Kind {
	return h.layout.Kind
}

// Predict handles a complete submission in one request.
func (h *AssessmentHandler[F]) Predict(c *gin.Context) {
	var form F
	if !utils.BindJSON(c, &form) {
		return
	}
	if missing := h.layout.IncompleteSections(&form); len(missing) > 0 {
		h.metrics.ObservePrediction(string(h.layout.Kind), metrics.OutcomeIncomplete)
		utils.Incomplete(c, missing)
		return
	}

	result, err := h.forward(c, form)
	if err != nil {
		utils.InternalServerError(c, h.failureMessage)
		return
	}
	utils.Success(c, result)
}

// Schema returns the section layout of the form.
func (h *AssessmentHandler[F]) Schema(c *gin.Context) {
	utils.Success(c, h.layout)
}

// forward maps the form and calls the prediction service. The call is
// detached from client cancellation so a submission always runs to
// completion or failure.
func (h *AssessmentHandler[F]) forward(c *gin.Context, form F) (*prediction.Result, error) {
	kind := string(h.layout.Kind)
	requestID, _ := middleware.GetRequestIDFromContext(c)

	ctx := context.WithoutCancel(c.Request.Context())
	result, err := h.predictor.Predict(ctx, h.layout.Kind, h.convert(form))
	if err != nil {
		h.metrics.ObservePrediction(kind, metrics.OutcomeError)
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("prediction failed")
		return nil, err
	}

	outcome := metrics.OutcomeLowRisk
	if result.HighRisk {
		outcome = metrics.OutcomeHighRisk
	}
	h.metrics.ObservePrediction(kind, outcome)
	return result, nil
}

// respondCollectorError maps collector errors onto HTTP responses.
func (h *AssessmentHandler[F]) respondCollectorError(c *gin.Context, err error) {
	var incomplete *collector.IncompleteError
	switch {
	case errors.As(err, &incomplete):
		h.metrics.ObservePrediction(string(h.layout.Kind), metrics.OutcomeIncomplete)
		utils.Incomplete(c, incomplete.Sections)
	case errors.Is(err, collector.ErrInvalidDraft), errors.Is(err, collector.ErrUnknownField):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, collector.ErrSectionIncomplete),
		errors.Is(err, collector.ErrNoNextSection),
		errors.Is(err, collector.ErrNoPreviousSection):
		utils.UnprocessableEntity(c, err.Error())
	case errors.Is(err, collector.ErrBusy):
		utils.Error(c, http.StatusConflict, err.Error())
	default:
		utils.InternalServerError(c, h.failureMessage)
	}
}
