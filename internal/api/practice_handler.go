package api

import (
	"net/http"

	"github.com/canchaclub/cancha-api/internal/api/shared"
	"github.com/canchaclub/cancha-api/internal/domain"
	"github.com/canchaclub/cancha-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// AssociateDisciplineRequest represents the request body for linking a court
// to a discipline
type AssociateDisciplineRequest struct {
	DisciplineID int64  `json:"discipline_id" validate:"required,gt=0"`
	Frequency    string `json:"frequency"     validate:"required"`
}

// UpdateFrequencyRequest represents the request body for changing an
// association's practice frequency
type UpdateFrequencyRequest struct {
	Frequency string `json:"frequency" validate:"required"`
}

// PracticeRelationshipResponse represents the response data for an
// association
type PracticeRelationshipResponse struct {
	CourtID      int64  `json:"court_id"`
	DisciplineID int64  `json:"discipline_id"`
	Frequency    string `json:"frequency"`
}

// PracticeListingResponse represents one row of an association listing,
// carrying the names from both sides of the link
type PracticeListingResponse struct {
	CourtID        int64  `json:"court_id"`
	CourtName      string `json:"court_name"`
	DisciplineID   int64  `json:"discipline_id"`
	DisciplineName string `json:"discipline_name"`
	Frequency      string `json:"frequency"`
}

// PracticeHandler handles court-discipline association HTTP requests
type PracticeHandler struct {
	practiceService service.PracticeService
	validator       *validator.Validate
}

// NewPracticeHandler creates a new PracticeHandler
func NewPracticeHandler(practiceService service.PracticeService) *PracticeHandler {
	return &PracticeHandler{
		practiceService: practiceService,
		validator:       validator.New(),
	}
}

// AssociateDiscipline handles POST /api/v1/courts/{id}/disciplines requests
func (h *PracticeHandler) AssociateDiscipline(w http.ResponseWriter, r *http.Request) {
	courtID, ok := parseCourtID(w, r)
	if !ok {
		return
	}

	var req AssociateDisciplineRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	rel, err := h.practiceService.Associate(
		r.Context(),
		courtID,
		req.DisciplineID,
		domain.PracticeFrequency(req.Frequency),
	)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "Discipline associated", relToResponse(rel))
}

// UpdateFrequency handles PUT /api/v1/courts/{id}/disciplines/{disciplineID}
// requests
func (h *PracticeHandler) UpdateFrequency(w http.ResponseWriter, r *http.Request) {
	courtID, ok := parseCourtID(w, r)
	if !ok {
		return
	}
	disciplineID, ok := parseDisciplineID(w, r)
	if !ok {
		return
	}

	var req UpdateFrequencyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	rel, err := h.practiceService.UpdateFrequency(
		r.Context(),
		courtID,
		disciplineID,
		domain.PracticeFrequency(req.Frequency),
	)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Frequency updated", relToResponse(rel))
}

// DissociateDiscipline handles
// DELETE /api/v1/courts/{id}/disciplines/{disciplineID} requests
func (h *PracticeHandler) DissociateDiscipline(w http.ResponseWriter, r *http.Request) {
	courtID, ok := parseCourtID(w, r)
	if !ok {
		return
	}
	disciplineID, ok := parseDisciplineID(w, r)
	if !ok {
		return
	}

	if err := h.practiceService.Dissociate(r.Context(), courtID, disciplineID); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Discipline dissociated", nil)
}

// ListDisciplinesForCourt handles GET /api/v1/courts/{id}/disciplines
// requests
func (h *PracticeHandler) ListDisciplinesForCourt(w http.ResponseWriter, r *http.Request) {
	courtID, ok := parseCourtID(w, r)
	if !ok {
		return
	}

	listings, err := h.practiceService.ListDisciplinesForCourt(r.Context(), courtID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Disciplines retrieved", listingsToResponses(listings))
}

// ListCourtsForDiscipline handles GET /api/v1/disciplines/{id}/courts
// requests
func (h *PracticeHandler) ListCourtsForDiscipline(w http.ResponseWriter, r *http.Request) {
	disciplineID, err := shared.ParseInt64Param(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid discipline ID")
		return
	}

	listings, err := h.practiceService.ListCourtsForDiscipline(r.Context(), disciplineID)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Courts retrieved", listingsToResponses(listings))
}

func parseCourtID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := shared.ParseInt64Param(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid court ID")
		return 0, false
	}
	return id, true
}

func parseDisciplineID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := shared.ParseInt64Param(chi.URLParam(r, "disciplineID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid discipline ID")
		return 0, false
	}
	return id, true
}

// relToResponse converts a domain.PracticeRelationship to its response form
func relToResponse(rel *domain.PracticeRelationship) PracticeRelationshipResponse {
	return PracticeRelationshipResponse{
		CourtID:      rel.CourtID,
		DisciplineID: rel.DisciplineID,
		Frequency:    string(rel.Frequency),
	}
}

func listingsToResponses(listings []*domain.PracticeListing) []PracticeListingResponse {
	responses := make([]PracticeListingResponse, 0, len(listings))
	for _, l := range listings {
		responses = append(responses, PracticeListingResponse{
			CourtID:        l.CourtID,
			CourtName:      l.CourtName,
			DisciplineID:   l.DisciplineID,
			DisciplineName: l.DisciplineName,
			Frequency:      string(l.Frequency),
		})
	}
	return responses
}
