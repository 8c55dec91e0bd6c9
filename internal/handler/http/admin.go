package http

import (
	"net/http"

	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/internal/utils"
	"github.com/brightsmile/membership-api/models"
	"github.com/go-chi/chi/v5"
)

// getApplication handles GET /api/admin/applications/{applicationID}.
// It sits behind the auth middleware and is the only endpoint that returns
// bank details in plaintext.
func (h *Handler) getApplication(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	applicationID := chi.URLParam(r, "applicationID")

	staff, _ := utils.GetStaffFromContext(r.Context())
	log.Info().
		Str("staff", staff).
		Str("application_id", applicationID).
		Msg("staff application read")

	resp, err := h.services.ApplicationService.GetApplication(r.Context(), applicationID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getApplication").Msg("error reading application")
		utils.WriteJSON(w, models.ErrorResponse{
			Error: "Unable to read application",
		}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
