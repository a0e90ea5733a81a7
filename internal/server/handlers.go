package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/orient-research/fundscope/pkg/fundscope/metrics"
	"github.com/orient-research/fundscope/pkg/fundscope/models"
	"github.com/orient-research/fundscope/pkg/fundscope/output"
	"github.com/orient-research/fundscope/pkg/fundscope/programs"
)

const defaultTopN = 10

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"session": s.sess.ID(),
		"loaded":  s.sess.Loaded(),
	})
}

// handleUpload accepts a workbook as a multipart "workbook" field or as a
// raw request body and loads it into the session.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	var (
		b   []byte
		err error
	)
	if ct := r.Header.Get("Content-Type"); strings.HasPrefix(ct, "multipart/form-data") {
		file, _, ferr := r.FormFile("workbook")
		if ferr != nil {
			s.respondError(w, http.StatusBadRequest, "missing workbook file field")
			return
		}
		defer file.Close()
		b, err = io.ReadAll(file)
	} else {
		b, err = io.ReadAll(r.Body)
	}
	if err != nil || len(b) == 0 {
		s.respondError(w, http.StatusBadRequest, "empty workbook upload")
		return
	}

	wb, err := s.sess.LoadBytes(b)
	if err != nil {
		s.log.Warn("workbook load failed", zap.Error(err))
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.log.Info("workbook loaded",
		zap.Int("sheets", wb.NumSheets()),
		zap.Int("records", metrics.TotalRecords(wb)),
	)
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sheets":  wb.NumSheets(),
		"records": metrics.TotalRecords(wb),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.sess.Reset()
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.workbook(w)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"book_name": wb.BookName,
		"source":    s.sess.Source(),
		"loaded_at": s.sess.LoadedAt().Format(time.RFC3339),
		"sheets":    metrics.Overview(wb),
	})
}

// handleSummary serves the headline metrics: total funding across the
// configured program terms, data sources, total records and states
// covered.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.workbook(w)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"total_funding":  metrics.TotalFunding(wb, programs.FundingTerms()),
		"data_sources":   wb.NumSheets(),
		"total_records":  metrics.TotalRecords(wb),
		"states_covered": metrics.StatesCovered(wb),
	})
}

func (s *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.workbook(w)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, programs.CollectAll(wb))
}

func (s *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.workbook(w)
	if !ok {
		return
	}
	p, ok := programs.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		s.respondError(w, http.StatusNotFound, "unknown program")
		return
	}
	s.respondJSON(w, http.StatusOK, programs.Collect(wb, p))
}

// handleSheet serves normalized rows of one sheet with limit/offset paging.
func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.workbook(w)
	if !ok {
		return
	}
	sheet, ok := wb.Sheet(chi.URLParam(r, "name"))
	if !ok {
		s.respondSoft(w, &metrics.MissingSheetError{Sheet: chi.URLParam(r, "name")})
		return
	}

	limit := queryInt(r, "limit", 100)
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	if offset > len(sheet.Rows) {
		offset = len(sheet.Rows)
	}
	end := len(sheet.Rows)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sheet":   sheet.Name,
		"columns": sheet.Columns,
		"rows":    sheet.Rows[offset:end],
		"total":   sheet.NumRows(),
		"offset":  offset,
	})
}

func (s *Server) handleRollup(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.workbook(w)
	if !ok {
		return
	}
	by := r.URL.Query().Get("by")
	if by == "" {
		s.respondError(w, http.StatusBadRequest, "missing required parameter: by")
		return
	}
	var boolCols []string
	if v := r.URL.Query().Get("bools"); v != "" {
		boolCols = strings.Split(v, ",")
	}
	sortBy := metrics.RollupSort(r.URL.Query().Get("sort"))
	switch sortBy {
	case metrics.SortNone, metrics.SortCount, metrics.SortSum:
	default:
		s.respondError(w, http.StatusBadRequest, "sort must be count or sum")
		return
	}

	groups, err := metrics.Rollup(wb, chi.URLParam(r, "name"), by, r.URL.Query().Get("sum"), boolCols, sortBy)
	if err != nil {
		s.respondSoft(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sheet":  chi.URLParam(r, "name"),
		"by":     by,
		"groups": groups,
	})
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.workbook(w)
	if !ok {
		return
	}
	column := r.URL.Query().Get("column")
	if column == "" {
		s.respondError(w, http.StatusBadRequest, "missing required parameter: column")
		return
	}
	min, err := queryFloat(r, "min")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	max, err := queryFloat(r, "max")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sheet, err := metrics.FilterRange(wb, chi.URLParam(r, "name"), column, min, max)
	if err != nil {
		s.respondSoft(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, sheet)
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.workbook(w)
	if !ok {
		return
	}
	column := r.URL.Query().Get("column")
	if column == "" {
		s.respondError(w, http.StatusBadRequest, "missing required parameter: column")
		return
	}
	n := queryInt(r, "n", defaultTopN)
	if n <= 0 {
		s.respondError(w, http.StatusBadRequest, "n must be positive")
		return
	}

	sheet, err := metrics.TopN(wb, chi.URLParam(r, "name"), column, n)
	if err != nil {
		s.respondSoft(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, sheet)
}

// handleExport streams a sheet as CSV. Optional column/min/max parameters
// export a range-filtered subset instead of the whole sheet.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	wb, ok := s.workbook(w)
	if !ok {
		return
	}
	name := chi.URLParam(r, "name")

	var (
		sheet *models.Sheet
		err   error
	)
	if column := r.URL.Query().Get("column"); column != "" {
		min, ferr := queryFloat(r, "min")
		if ferr != nil {
			s.respondError(w, http.StatusBadRequest, ferr.Error())
			return
		}
		max, ferr := queryFloat(r, "max")
		if ferr != nil {
			s.respondError(w, http.StatusBadRequest, ferr.Error())
			return
		}
		sheet, err = metrics.FilterRange(wb, name, column, min, max)
	} else {
		var found bool
		sheet, found = wb.Sheet(name)
		if !found {
			err = &metrics.MissingSheetError{Sheet: name}
		}
	}
	if err != nil {
		s.respondSoft(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sheet.Name+".csv"))
	if err := output.WriteCSV(w, sheet); err != nil {
		s.log.Error("csv export", zap.String("sheet", sheet.Name), zap.Error(err))
	}
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func queryFloat(r *http.Request, key string) (float64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, fmt.Errorf("missing required parameter: %s", key)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return f, nil
}
