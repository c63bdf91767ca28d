// Package server exposes the unit conversion operations over a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanglongqi/uniunit/pkg/quantity"
	"github.com/wanglongqi/uniunit/pkg/system"
)

// Handlers provides the HTTP handlers for the conversion API.
type Handlers struct {
	reg    *quantity.Registry
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance over reg.
func NewHandlers(reg *quantity.Registry, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{reg: reg, logger: logger}
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "uniunit API is running",
	})
}

// Presets lists every preset with its literal table.
func (h *Handlers) Presets(w http.ResponseWriter, r *http.Request) {
	names := system.Presets()
	details := make(map[string]map[string]string, len(names))
	for _, name := range names {
		cfg, err := system.PresetConfig(name)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		details[name] = cfg.Units
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"presets": names,
		"details": details,
	})
}

// PresetByName returns a single preset.
func (h *Handlers) PresetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	cfg, err := system.PresetConfig(name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        name,
		"units":       cfg.Units,
		"description": cfg.Description,
	})
}

// Units lists every registered unit name.
func (h *Handlers) Units(w http.ResponseWriter, r *http.Request) {
	names := h.reg.Names()
	writeJSON(w, http.StatusOK, map[string]any{
		"units": names,
		"count": len(names),
	})
}

// ChineseUnits returns the Chinese unit alias table.
func (h *Handlers) ChineseUnits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"chinese_units": quantity.ChineseUnits(),
	})
}

type convertRequest struct {
	Value    float64 `json:"value"`
	FromUnit string  `json:"from_unit"`
	ToUnit   string  `json:"to_unit"`
}

// Convert rescales a bare value between two unit expressions.
func (h *Handlers) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := system.ConvertValue(h.reg, req.Value, req.FromUnit, req.ToUnit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"value":     req.Value,
		"from_unit": req.FromUnit,
		"to_unit":   req.ToUnit,
		"result":    result,
	})
}

type unitSystemRequest struct {
	Value string            `json:"value"`
	Units map[string]string `json:"units"`
}

// UnitSystem converts a quantity through an ad-hoc unit system.
func (h *Handlers) UnitSystem(w http.ResponseWriter, r *http.Request) {
	var req unitSystemRequest
	if !h.decode(w, r, &req) {
		return
	}
	sys, err := system.New(h.reg, req.Units)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q, err := h.reg.Parse(req.Value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	converted, err := sys.ToUnit(q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"value":  req.Value,
		"units":  req.Units,
		"result": converted.Value(),
		"unit":   converted.Unit().Name(),
	})
}

type quickConvertRequest struct {
	Value      string `json:"value"`
	FromSystem string `json:"from_system"`
	ToSystem   string `json:"to_system"`
}

// QuickConvert converts a quantity between two preset systems.
func (h *Handlers) QuickConvert(w http.ResponseWriter, r *http.Request) {
	var req quickConvertRequest
	if !h.decode(w, r, &req) {
		return
	}
	q, err := h.reg.Parse(req.Value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	converted, err := system.QuickConvert(h.reg, q, req.FromSystem, req.ToSystem)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"value":       req.Value,
		"from_system": req.FromSystem,
		"to_system":   req.ToSystem,
		"result":      converted.Value(),
		"unit":        converted.Unit().Name(),
	})
}

type unitInfoRequest struct {
	Value string `json:"value"`
}

// UnitInfo returns the descriptive record for a quantity expression.
func (h *Handlers) UnitInfo(w http.ResponseWriter, r *http.Request) {
	var req unitInfoRequest
	if !h.decode(w, r, &req) {
		return
	}
	q, err := h.reg.Parse(req.Value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, system.Info(q))
}

// Compatibility reports dimensional equality of the units a and b.
func (h *Handlers) Compatibility(w http.ResponseWriter, r *http.Request) {
	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")
	if a == "" || b == "" {
		h.writeError(w, r, errors.New("query parameters 'a' and 'b' are required"))
		return
	}
	unitA, err := h.reg.ParseUnit(a)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	unitB, err := h.reg.ParseUnit(b)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"a":          a,
		"b":          b,
		"compatible": system.Compatible(unitA, unitB),
	})
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, r, errors.New("invalid JSON body"))
		return false
	}
	return true
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	var preset *system.UnknownPresetError
	if errors.As(err, &preset) {
		status = http.StatusNotFound
	}
	h.logger.Debug("request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
