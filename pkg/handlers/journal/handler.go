package journal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/journal-atlas/pkg/adapters"
	"github.com/de-tools/journal-atlas/pkg/models/api"
	"github.com/de-tools/journal-atlas/pkg/models/domain"
	"github.com/de-tools/journal-atlas/pkg/services/analytics"
	"github.com/de-tools/journal-atlas/pkg/services/atlas"
	journalsvc "github.com/de-tools/journal-atlas/pkg/services/journal"
)

const dateParamLayout = "02-01-2006"

type Handler struct {
	atlas atlas.Explorer
}

func NewHandler(explorer atlas.Explorer) *Handler {
	return &Handler{atlas: explorer}
}

func (h *Handler) ListJournals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	journals, err := h.atlas.ListJournals(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list journals")
		http.Error(w, "failed to list journals", http.StatusInternalServerError)
		return
	}

	response := make([]api.Journal, 0, len(journals))
	for _, j := range journals {
		response = append(response, api.Journal{Name: j.Name})
	}

	writeJSON(w, logger, response)
}

func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "journal")

	from, err := parseDateParam(r, "from", time.Time{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := parseDateParam(r, "to", time.Time{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !to.IsZero() {
		// the query param is an inclusive date, reads are end-exclusive
		to = to.AddDate(0, 0, 1)
	}

	svc, err := h.atlas.GetJournalService(ctx, domain.Journal{Name: name})
	if err != nil {
		http.Error(w, fmt.Sprintf("journal %q not found", name), http.StatusNotFound)
		return
	}

	listed, err := svc.ListEntries(ctx, from, to)
	if err != nil {
		logger.Error().Err(err).Str("journal", name).Msg("failed to list entries")
		http.Error(w, "failed to list entries", http.StatusInternalServerError)
		return
	}

	response := make([]api.Entry, 0, len(listed))
	for _, entry := range listed {
		response = append(response, adapters.MapEntryDomainToApi(entry))
	}

	writeJSON(w, logger, response)
}

func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "journal")

	var request api.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var entryDate time.Time
	if request.Date != "" {
		parsed, err := time.Parse("2006-01-02", request.Date)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid date %q, expected format 2006-01-02", request.Date), http.StatusBadRequest)
			return
		}
		entryDate = parsed
	}

	svc, err := h.atlas.GetJournalService(ctx, domain.Journal{Name: name})
	if err != nil {
		http.Error(w, fmt.Sprintf("journal %q not found", name), http.StatusNotFound)
		return
	}

	entry, err := svc.AddEntry(ctx, journalsvc.CreateEntryInput{
		Date:           entryDate,
		Content:        request.Content,
		PrimaryMood:    request.PrimaryMood,
		SecondaryMoods: request.SecondaryMoods,
		Tags:           request.Tags,
	})
	if err != nil {
		logger.Warn().Err(err).Str("journal", name).Msg("entry rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(adapters.MapEntryDomainToApi(entry)); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "journal")

	from, err := parseDateParam(r, "from", time.Time{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := parseDateParam(r, "to", time.Time{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	svc, err := h.atlas.GetJournalService(ctx, domain.Journal{Name: name})
	if err != nil {
		http.Error(w, fmt.Sprintf("journal %q not found", name), http.StatusNotFound)
		return
	}

	report, err := svc.Analytics(ctx, analytics.Window{Start: from, End: to})
	if err != nil {
		logger.Error().Err(err).Str("journal", name).Msg("failed to compute analytics")
		http.Error(w, "failed to compute analytics", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapAnalyticsReportDomainToApi(name, report))
}

func parseDateParam(r *http.Request, name string, defaultDate time.Time) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return defaultDate, nil
	}
	parsed, err := time.Parse(dateParamLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %q date %q, expected format DD-MM-YYYY", name, value)
	}
	return parsed, nil
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
