package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/carloscedeno/cardstore"
	"github.com/carloscedeno/cardstore/http/resp"
	"github.com/carloscedeno/cardstore/postgres"
)

type importParams struct {
	ImportType string            `json:"import_type" schema:"import_type" validate:"omitempty,oneof=collection inventory"`
	Rows       []map[string]any  `json:"rows" validate:"required,min=1"`
	Mapping    map[string]string `json:"mapping"`
}

// field resolves which key of a row holds the named field,
// honoring the caller's column mapping when one is configured.
func (p importParams) field(row map[string]any, name string) any {
	key := name
	if mapped, ok := p.Mapping[name]; ok && mapped != "" {
		key = mapped
	}

	return row[key]
}

// ImportCollection ingests tabular rows for the current user.
//
// The "inventory" import type hands the whole batch to the database's
// atomic bulk routine. The default "collection" type walks rows one at
// a time: a row that cannot resolve (missing name, no matching card,
// insert failure) is recorded with its zero-based index and the walk
// continues, so the caller can show partial-success results.
func (h *Handler) ImportCollection(w http.ResponseWriter, r *http.Request) {
	claims, err := h.currentUser(r)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var params importParams
	if err := h.parser.Parse(r, &params); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	if params.ImportType == "inventory" {
		h.importInventory(w, r, claims.UserID, params)
		return
	}

	h.importCollectionRows(w, r, claims.UserID, params)
}

func (h *Handler) importInventory(w http.ResponseWriter, r *http.Request, userID uint, params importParams) {
	rows, err := json.Marshal(params.Rows)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	mapping, err := json.Marshal(params.Mapping)
	if err != nil {
		h.resp.Err(w, r, err)
		return
	}

	var result struct {
		ImportedCount int64 `json:"imported_count"`
		TotalRows     int64 `json:"total_rows"`
	}
	if err := h.db.RPC(&result, postgres.RPCBulkImportInventory, userID, rows, mapping); err != nil {
		h.resp.Err(w, r, err)
		return
	}

	h.resp.Json(w, r, resp.Data(map[string]any{
		"import_type":    "inventory",
		"imported_count": result.ImportedCount,
		"total_rows":     result.TotalRows,
	}))
}

func (h *Handler) importCollectionRows(w http.ResponseWriter, r *http.Request, userID uint, params importParams) {
	var (
		imported      int
		errs          = []string{}
		failedIndices = []int{}
	)

	for i, row := range params.Rows {
		if err := h.importRow(userID, params, row); err != nil {
			errs = append(errs, fmt.Sprintf("row %d: %s", i, err))
			failedIndices = append(failedIndices, i)
			continue
		}

		imported++
	}

	h.resp.Json(w, r, resp.Data(map[string]any{
		"import_type":    "collection",
		"imported_count": imported,
		"total_rows":     len(params.Rows),
		"errors":         errs,
		"failed_indices": failedIndices,
	}))
}

func (h *Handler) importRow(userID uint, params importParams, row map[string]any) error {
	name, _ := params.field(row, "name").(string)
	if name == "" {
		return fmt.Errorf("%w: missing card name", cardstore.ErrMissingData)
	}

	var card cardstore.Card
	if err := h.db.FindByQuery(&card, map[string]any{"name = ?": name}); err != nil {
		return fmt.Errorf("no card named %q: %w", name, err)
	}

	quantity := 1
	if q, ok := params.field(row, "quantity").(float64); ok && q > 0 {
		quantity = int(q)
	}

	condition, _ := params.field(row, "condition").(string)

	item := cardstore.CollectionItem{
		UserID:    userID,
		CardID:    card.ID,
		Quantity:  quantity,
		Condition: condition,
	}

	return h.db.Insert(&item)
}
