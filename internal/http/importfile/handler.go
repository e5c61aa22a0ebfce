package importfile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledgerly/internal/importer"
	"github.com/MrJamesThe3rd/ledgerly/internal/tabular"
)

type Handler struct {
	svc            *importer.Service
	maxUploadBytes int64
}

func NewHandler(svc *importer.Service, maxUploadBytes int64) *Handler {
	return &Handler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importFile)
	r.Post("/preview", h.preview)
}

type importErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type importSuccessResponse struct {
	ParserType string `json:"parser_type"`
	Imported   int    `json:"imported"`
}

// readUpload parses the multipart form and turns the uploaded file into rows.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) ([][]string, bool) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	rows, err := tabular.Read(file, header.Filename)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	return rows, true
}

func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	bankName := r.FormValue("bank_name")
	if bankName == "" {
		http.Error(w, "bank_name field is required", http.StatusBadRequest)
		return
	}

	// column_mappings is an optional JSON object; null values mean the field
	// has no column, so they are dropped from the map.
	var mapping importer.Mapping

	if raw := r.FormValue("column_mappings"); raw != "" {
		var withNulls map[string]*int
		if err := json.Unmarshal([]byte(raw), &withNulls); err != nil {
			http.Error(w, "invalid column_mappings: "+err.Error(), http.StatusBadRequest)
			return
		}

		mapping = make(importer.Mapping, len(withNulls))
		for field, idx := range withNulls {
			if idx != nil {
				mapping[field] = *idx
			}
		}
	}

	result, err := h.svc.Import(r.Context(), importer.ImportParams{
		Rows:       rows,
		Bank:       bankName,
		ParserID:   r.FormValue("parser_type"),
		Mapping:    mapping,
		DateFormat: importer.DateFormat(r.FormValue("date_format")),
	})
	if err != nil {
		writeImportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importSuccessResponse{
		ParserType: result.ParserID,
		Imported:   len(result.Imported),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeImportError(w http.ResponseWriter, err error) {
	var rowErrs importer.ImportErrors
	if errors.As(err, &rowErrs) {
		writeJSONError(w, http.StatusBadRequest, importErrorResponse{
			Message: "import failed",
			Errors:  rowErrs.Messages(),
		})

		return
	}

	var missing *importer.MissingMappingError
	if errors.As(err, &missing) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if errors.Is(err, importer.ErrStorageFailure) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Empty files, unknown parsers, bad date formats and the like are all
	// caller mistakes.
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func writeJSONError(w http.ResponseWriter, status int, resp importErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type previewResponse struct {
	Headers     []string              `json:"headers"`
	SampleRows  [][]string            `json:"sample_rows"`
	ParserType  string                `json:"parser_type"`
	ParserName  string                `json:"parser_name"`
	Mapping     importer.Mapping      `json:"column_mappings"`
	Parsers     []importer.Option     `json:"parsers"`
	DateFormats []importer.DateFormat `json:"date_formats"`
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	preview, err := importer.Preview(rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(previewResponse{
		Headers:     preview.Headers,
		SampleRows:  preview.SampleRows,
		ParserType:  preview.ParserID,
		ParserName:  preview.ParserName,
		Mapping:     preview.Mapping,
		Parsers:     preview.Options,
		DateFormats: importer.DateFormats(),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
