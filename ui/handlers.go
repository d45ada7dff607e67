package ui

import (
	"net/http"
	"strconv"

	"goattrition/adapters/tabular"
	"goattrition/internal/engine"
	"goattrition/internal/errors"
)

// datasetResponse describes the loaded dataset and a small preview
type datasetResponse struct {
	Name     string          `json:"name"`
	RowCount int             `json:"row_count"`
	Fields   interface{}     `json:"fields"`
	Preview  previewResponse `json:"preview"`
}

type previewResponse struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

func (a *App) handleDataset(w http.ResponseWriter, r *http.Request) {
	head := a.dataset.NewView().Head(a.previewRows)
	rows := make([][]string, head.Len())
	for i := range rows {
		rows[i] = head.Row(i)
	}

	respondJSON(w, http.StatusOK, datasetResponse{
		Name:     a.dataset.Name,
		RowCount: a.dataset.RowCount(),
		Fields:   a.dataset.Fields,
		Preview:  previewResponse{Header: head.Header(), Rows: rows},
	})
}

// summaryResponse reports the filtered view size and, when the attrition
// column exists, the overall attrition rate.
type summaryResponse struct {
	RowCount  int          `json:"row_count"`
	Attrition *engine.Rate `json:"attrition,omitempty"`
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	spec, err := decodeSpec(r)
	if err != nil {
		respondError(w, err)
		return
	}
	view := engine.Apply(a.dataset, spec)

	resp := summaryResponse{RowCount: view.Len()}
	if rate, err := engine.AttritionRate(view, a.attritionField); err == nil {
		resp.Attrition = &rate
	}
	respondJSON(w, http.StatusOK, resp)
}

func (a *App) handleDistribution(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	if field == "" {
		respondError(w, errors.InvalidInput("query parameter 'field' is required"))
		return
	}
	spec, err := decodeSpec(r)
	if err != nil {
		respondError(w, err)
		return
	}

	counts, err := engine.Distribution(engine.Apply(a.dataset, spec), field)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"field":  field,
		"counts": counts,
	})
}

func (a *App) handleCrossTab(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	if field == "" {
		respondError(w, errors.InvalidInput("query parameter 'field' is required"))
		return
	}
	spec, err := decodeSpec(r)
	if err != nil {
		respondError(w, err)
		return
	}
	view := engine.Apply(a.dataset, spec)

	counts, err := engine.CrossTabCounts(view, field, a.attritionField)
	if err != nil {
		respondError(w, err)
		return
	}
	rates, err := engine.CrossTabRate(view, field, a.attritionField)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"field":  field,
		"counts": counts,
		"rates":  rates,
	})
}

func (a *App) handleNumericSummary(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	if field == "" {
		respondError(w, errors.InvalidInput("query parameter 'field' is required"))
		return
	}
	spec, err := decodeSpec(r)
	if err != nil {
		respondError(w, err)
		return
	}

	summary, err := engine.NumericSummary(engine.Apply(a.dataset, spec), field)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (a *App) handleHistogram(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	field := query.Get("field")
	if field == "" {
		respondError(w, errors.InvalidInput("query parameter 'field' is required"))
		return
	}
	bins := 0
	if raw := query.Get("bins"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, errors.InvalidInput("query parameter 'bins' must be a positive integer"))
			return
		}
		bins = parsed
	}
	spec, err := decodeSpec(r)
	if err != nil {
		respondError(w, err)
		return
	}
	view := engine.Apply(a.dataset, spec)

	if by := query.Get("by"); by != "" {
		hist, err := engine.NewGroupedHistogram(view, field, by, bins)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, hist)
		return
	}

	hist, err := engine.NewHistogram(view, field, bins)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, hist)
}

func (a *App) handleBoxplot(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	group := query.Get("group")
	value := query.Get("value")
	if group == "" || value == "" {
		respondError(w, errors.InvalidInput("query parameters 'group' and 'value' are required"))
		return
	}
	spec, err := decodeSpec(r)
	if err != nil {
		respondError(w, err)
		return
	}

	boxes, err := engine.BoxplotStats(engine.Apply(a.dataset, spec), group, value)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"group":  group,
		"value":  value,
		"groups": boxes,
	})
}

// correlationResponse carries the matrix with NaN entries as nulls
type correlationResponse struct {
	Applicable bool         `json:"applicable"`
	Fields     []string     `json:"fields,omitempty"`
	R          [][]*float64 `json:"r,omitempty"`
	P          [][]*float64 `json:"p,omitempty"`
}

func (a *App) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	spec, err := decodeSpec(r)
	if err != nil {
		respondError(w, err)
		return
	}

	corr := engine.CorrelationMatrix(engine.Apply(a.dataset, spec))
	respondJSON(w, http.StatusOK, correlationResponse{
		Applicable: corr.Applicable,
		Fields:     corr.Fields,
		R:          nullable(corr.R),
		P:          nullable(corr.P),
	})
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	spec, err := decodeSpec(r)
	if err != nil {
		respondError(w, err)
		return
	}

	buf, err := tabular.ExportCSV(engine.Apply(a.dataset, spec))
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="filtered_data.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf)
}
