package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bhandara-web/backend/internal/domain"
)

// maxImageSizeBytes caps uploaded camp images at 2 MB.
const maxImageSizeBytes = 2 << 20

// campResponse is the JSON shape of a camp. Computed search values (status,
// distance) are request-scoped inside the engine and deliberately have no
// field here.
type campResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Address        string    `json:"address"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time,omitempty"`
	OrganizerName  string    `json:"organizer_name,omitempty"`
	OrganizerPhone string    `json:"organizer_phone,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	Source         string    `json:"source"`
	IsActive       bool      `json:"is_active"`
	IsRecurring    bool      `json:"is_recurring"`
	CreatedAt      time.Time `json:"created_at"`
}

// campListResponse is the body of GET /api/camps. Total is the size of the
// full filtered set, not the page.
type campListResponse struct {
	Camps []campResponse `json:"camps"`
	Total int            `json:"total"`
}

// ListCamps handles GET /api/camps.
//
// Query parameters: lat, lng (decimal degrees; geo filtering requires both),
// radius_km ∈ [1,500] (default 50), city (≤200 chars), page ≥ 1 (default 1),
// limit ∈ [1,100] (default 20). Out-of-range values are rejected with 422
// before the search engine runs.
func (s *Server) ListCamps(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := parseFloatParam(q.Get("lat"), "lat", -90, 90)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	lng, err := parseFloatParam(q.Get("lng"), "lng", -180, 180)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	radius, err := parseFloatParam(q.Get("radius_km"), "radius_km", 1, 500)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	page, err := parseIntParam(q.Get("page"), "page", 1, 1<<30)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	limit, err := parseIntParam(q.Get("limit"), "limit", 1, 100)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	var city *string
	if v := q.Get("city"); v != "" {
		if len(v) > 200 {
			respondError(w, http.StatusUnprocessableEntity, "validation_error", "city must be at most 200 characters")
			return
		}
		city = &v
	}

	filter := domain.NewSearchFilter(lat, lng, radius, city, page, limit)

	camps, total, err := s.camps.Search(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "search failed")
		return
	}

	resp := campListResponse{Camps: make([]campResponse, len(camps)), Total: total}
	for i, c := range camps {
		resp.Camps[i] = campToResponse(c)
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetCamp handles GET /api/camps/{campID}.
func (s *Server) GetCamp(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "campID"))
	if err != nil {
		// A malformed ID cannot name any camp.
		respondError(w, http.StatusNotFound, "not_found", "camp not found")
		return
	}

	camp, err := s.camps.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "camp not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "lookup failed")
		return
	}

	respondJSON(w, http.StatusOK, campToResponse(camp))
}

// CreateCamp handles POST /api/camps.
//
// The body is a multipart form (the public submission form uploads an image
// alongside the fields). An attached image must be at most 2 MB and is
// stored inline as a base64 data URL. Camps created here are always
// source=user and active.
func (s *Server) CreateCamp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSizeBytes + 1<<20); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "request too large or not multipart")
		return
	}

	camp := domain.Camp{
		Title:          r.FormValue("title"),
		Description:    r.FormValue("description"),
		Address:        r.FormValue("address"),
		Date:           r.FormValue("date"),
		StartTime:      r.FormValue("start_time"),
		EndTime:        r.FormValue("end_time"),
		OrganizerName:  r.FormValue("organizer_name"),
		OrganizerPhone: r.FormValue("organizer_phone"),
		Source:         domain.SourceUser,
	}

	var err error
	camp.Latitude, err = strconv.ParseFloat(r.FormValue("latitude"), 64)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "latitude must be a number")
		return
	}
	camp.Longitude, err = strconv.ParseFloat(r.FormValue("longitude"), 64)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "longitude must be a number")
		return
	}
	if v := r.FormValue("is_recurring"); v != "" {
		camp.IsRecurring, err = strconv.ParseBool(v)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "validation_error", "is_recurring must be a boolean")
			return
		}
	}

	imageURL, err := encodeImage(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	camp.ImageURL = imageURL

	created, err := s.camps.Create(r.Context(), camp)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "create failed")
		return
	}

	respondJSON(w, http.StatusCreated, campToResponse(created))
}

// encodeImage reads the optional "image" form file and returns it as a
// base64 data URL, or "" when no image was attached.
func encodeImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", errors.New("error reading image")
	}
	defer file.Close()

	// Read one byte past the limit to detect oversized uploads without
	// buffering arbitrarily large files.
	content, err := io.ReadAll(io.LimitReader(file, maxImageSizeBytes+1))
	if err != nil {
		return "", errors.New("error reading image")
	}
	if len(content) > maxImageSizeBytes {
		return "", errors.New("image must be under 2MB")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}

// campToResponse converts a domain.Camp into its JSON shape.
func campToResponse(c domain.Camp) campResponse {
	return campResponse{
		ID:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		Address:        c.Address,
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		Date:           c.Date,
		StartTime:      c.StartTime,
		EndTime:        c.EndTime,
		OrganizerName:  c.OrganizerName,
		OrganizerPhone: c.OrganizerPhone,
		ImageURL:       c.ImageURL,
		Source:         c.Source,
		IsActive:       c.IsActive,
		IsRecurring:    c.IsRecurring,
		CreatedAt:      c.CreatedAt,
	}
}

// parseFloatParam parses an optional float query parameter and checks its
// range. Returns nil when the parameter is absent.
func parseFloatParam(raw, name string, min, max float64) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New(name + " must be a number")
	}
	if v < min || v > max {
		return nil, errors.New(name + " is out of range")
	}
	return &v, nil
}

// parseIntParam parses an optional integer query parameter and checks its
// range. Returns nil when the parameter is absent.
func parseIntParam(raw, name string, min, max int) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	if v < min || v > max {
		return nil, errors.New(name + " is out of range")
	}
	return &v, nil
}
