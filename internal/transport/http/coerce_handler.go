package http

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"numclean/internal/config"
	apierrors "numclean/internal/errors"
	"numclean/internal/files"
	"numclean/internal/table"
)

// CoerceHandler serves the column-coercion endpoints.
type CoerceHandler struct {
	cfg          config.CoerceConfig
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewCoerceHandler creates a coercion handler.
func NewCoerceHandler(cfg config.CoerceConfig, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *CoerceHandler {
	return &CoerceHandler{
		cfg:          cfg,
		logger:       logger.With(slog.String("component", "coerce_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the coercion routes.
func (h *CoerceHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.With(render.SetContentType(render.ContentTypeJSON)).Post("/", h.Coerce)
	r.Post("/csv", h.CoerceCSV)
	return r
}

// CoerceRequest is the JSON body of POST /api/coerce. Columns holds
// mixed references: JSON numbers are zero-based positions, strings go
// through the usual token rule (all digits means position).
type CoerceRequest struct {
	Columns []any     `json:"columns" validate:"required,min=1"`
	Table   TableData `json:"table"`
}

// TableData is the wire shape of a table.
type TableData struct {
	Header []string `json:"header" validate:"required,min=1"`
	Rows   [][]any  `json:"rows"`
}

// CoerceResponse is the JSON body of a successful coercion.
type CoerceResponse struct {
	Success bool      `json:"success"`
	Table   TableData `json:"table"`
}

// Coerce handles POST /api/coerce.
func (h *CoerceHandler) Coerce(w http.ResponseWriter, r *http.Request) {
	var req CoerceRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format", err.Error()))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("body", err.Error()))
		return
	}

	refs, err := wireRefs(req.Columns)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	tbl, err := wireTable(req.Table)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	// The request table is handler-owned, so coercing in place saves a
	// copy without any caller-visible difference.
	out, err := table.Coerce(tbl, refs, table.Options{InPlace: true, Workers: h.cfg.Workers})
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "table coerced",
		slog.Int("rows", out.RowCount()),
		slog.Int("columns_targeted", len(refs)),
	)
	render.JSON(w, r, CoerceResponse{Success: true, Table: tableData(out)})
}

// CoerceCSV handles POST /api/coerce/csv: a multipart CSV upload with a
// "columns" field, answered with the cleaned CSV.
func (h *CoerceHandler) CoerceCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
		return
	}

	toks := splitColumnTokens(r.FormValue("columns"))
	if len(toks) == 0 {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("columns", "at least one column reference is required"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "a CSV file upload is required"))
		return
	}
	defer file.Close()

	opts := files.CSVOptions{Separator: h.cfg.SeparatorRune()}
	if sep := r.FormValue("separator"); sep != "" {
		opts.Separator = []rune(sep)[0]
	}

	tbl, err := files.ReadCSVFrom(file, opts)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrTableSource(err))
		return
	}

	out, err := table.Coerce(tbl, table.ParseRefs(toks), table.Options{InPlace: true, Workers: h.cfg.Workers})
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="cleaned.csv"`)
	if err := files.WriteCSVTo(w, out, opts); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to stream csv response", slog.String("error", err.Error()))
	}
}

// wireRefs converts the mixed JSON column list into core references.
func wireRefs(cols []any) ([]table.Ref, error) {
	refs := make([]table.Ref, 0, len(cols))
	for i, c := range cols {
		switch v := c.(type) {
		case string:
			refs = append(refs, table.ParseRef(v))
		case float64:
			if v != math.Trunc(v) {
				return nil, apierrors.ErrValidation("columns",
					fmt.Sprintf("column reference at position %d must be an integer or a string", i))
			}
			refs = append(refs, table.ByIndex(int(v)))
		default:
			return nil, apierrors.ErrValidation("columns",
				fmt.Sprintf("column reference at position %d must be an integer or a string", i))
		}
	}
	return refs, nil
}

// wireTable builds a core table from the wire shape.
func wireTable(data TableData) (*table.Table, error) {
	tbl := table.New(data.Header)
	for i, row := range data.Rows {
		if len(row) != len(data.Header) {
			return nil, apierrors.ErrValidation("table.rows",
				fmt.Sprintf("row %d has %d cells, header has %d", i, len(row), len(data.Header)))
		}
		if err := tbl.AppendRow(row); err != nil {
			return nil, apierrors.ErrValidation("table.rows", err.Error())
		}
	}
	return tbl, nil
}

// tableData renders a core table back to the wire shape. Coerced cells
// marshal as numbers or null, untouched cells keep their raw form.
func tableData(t *table.Table) TableData {
	rows := make([][]any, t.RowCount())
	for r := range rows {
		rows[r] = t.Row(r)
	}
	return TableData{Header: t.Names(), Rows: rows}
}

// splitColumnTokens splits a columns form value on commas and
// whitespace.
func splitColumnTokens(v string) []string {
	return strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
