package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/internal/service"
	"github.com/brightsmile/membership-api/internal/utils"
	"github.com/brightsmile/membership-api/models"
)

// submit handles POST /api/membership/submit, the single public write
// endpoint of the service. Request-body failures and validation rejections
// answer 400 with field detail; a persisted application answers 200 even
// when the confirmation email could not be sent.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.submit").Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{
			Error:   "Invalid request body",
			Details: "the request body must be valid JSON",
		}, http.StatusBadRequest)
		return
	}

	meta := models.RequestMeta{
		ClientIP:  utils.ClientIP(r),
		UserAgent: r.UserAgent(),
	}

	resp, err := h.services.ApplicationService.Submit(r.Context(), req, meta)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			utils.WriteJSON(w, models.ErrorResponse{
				Error:            "Validation failed",
				ValidationErrors: validationErr.Fields,
			}, http.StatusBadRequest)
			return
		}

		log.Err(err).Str("func", "*Handler.submit").Msg("error processing membership application")
		utils.WriteJSON(w, models.ErrorResponse{
			Error: "Unable to process your application right now. Please try again later.",
		}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// plans handles GET /api/membership/plans: the public catalog feeding the
// pricing pages.
func (h *Handler) plans(w http.ResponseWriter, r *http.Request) {
	catalog := models.AllPlans()

	resp := models.PlansResponse{Plans: make([]models.PlanInfo, 0, len(catalog))}
	for _, plan := range catalog {
		resp.Plans = append(resp.Plans, models.PlanInfo{
			Key:          string(plan.Key),
			Name:         plan.Key.DisplayName(),
			MonthlyPrice: plan.Key.DisplayPrice(),
		})
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
