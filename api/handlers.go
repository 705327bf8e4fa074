/*
handlers.go - HTTP API handlers for the fiscal calculation engine

PURPOSE:
  Exposes the calculators via REST. Handles HTTP request/response, JSON
  serialization, enum validation, and delegates to the pure engine.

ENDPOINTS:
  Calculators:
    POST /api/calculators/escritura             Closing-cost breakdown
    POST /api/calculators/honorarios            Commission per party
    POST /api/calculators/cedular               Capital-gains result
    POST /api/calculators/ajustes               Rent adjustment
    POST /api/calculators/cac                   Index projection
    POST /api/calculators/plazos/days-between   Calendar split
    POST /api/calculators/plazos/due-date       Business-day deadline

  Reference:
    GET  /api/reference/rates                   Active rate table
    GET  /api/reference/holidays                Active holiday calendar

  History:
    GET  /api/history                           Recent calculations

ERROR HANDLING:
  - 400: validation errors (bad enum keys, bad dates, out-of-range counts)
  - 500: configuration errors (rate-table defects) — logged with detail,
         surfaced generically; the table itself is the bug, not the caller
  Malformed numeric strings are NOT errors: the normalizer turns them into
  documented fallbacks before the engine runs.

REQUEST FLOW:
  1. Decode JSON
  2. Validate enums, normalize numeric strings
  3. Call the pure calculator
  4. Serialize response; append to the history store (best effort)

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/habitar/fiscal-engine/calc"
	"github.com/habitar/fiscal-engine/fiscal"
	"github.com/habitar/fiscal-engine/indices"
	"github.com/habitar/fiscal-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers. Rates, holidays and
// the index source are loaded once at startup and never mutated.
type Handler struct {
	Rates      fiscal.RateTable
	Holidays   fiscal.HolidaySet
	Index      indices.IndexSource
	FallbackFX fiscal.ExchangeRate
	History    *sqlite.Store // nil disables history
	Logger     *zap.Logger
}

// NewHandler wires a handler with the given engine configuration.
func NewHandler(rates fiscal.RateTable, holidays fiscal.HolidaySet, index indices.IndexSource, fallbackFX fiscal.ExchangeRate, history *sqlite.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Rates:      rates,
		Holidays:   holidays,
		Index:      index,
		FallbackFX: fallbackFX,
		History:    history,
		Logger:     logger,
	}
}

// =============================================================================
// CALCULATOR HANDLERS
// =============================================================================

// CalculateEscritura computes the closing-cost breakdown.
func (h *Handler) CalculateEscritura(w http.ResponseWriter, r *http.Request) {
	var req EscrituraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "bad_request", "")
		return
	}

	role, err := parseRole(req.Role)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	jurisdiction, err := parseJurisdiction(req.Jurisdiction)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	result, err := calc.Escritura(calc.EscrituraInput{
		Role:             role,
		Jurisdiction:     jurisdiction,
		ExchangeRate:     h.resolveExchangeRate(req.ExchangeRate),
		WritingPrice:     fiscal.NormalizeMoney(req.WritingPrice, fiscal.USD),
		TransactionPrice: fiscal.NormalizeMoney(req.TransactionPrice, fiscal.USD),
		StampTaxExempt:   req.StampTaxExempt,
	}, h.Rates)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dto := toBreakdownDTO(result)
	h.record(r.Context(), "escritura", req, dto)
	writeJSON(w, http.StatusOK, dto)
}

// CalculateHonorarios computes both parties' commissions.
func (h *Handler) CalculateHonorarios(w http.ResponseWriter, r *http.Request) {
	var req HonorariosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "bad_request", "")
		return
	}

	operation, err := parseOperation(req.Operation)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	currency := parseCurrency(req.Currency)

	input := calc.HonorariosInput{
		Operation:     operation,
		Amount:        fiscal.NormalizeMoney(req.Amount, currency),
		MonthlyAmount: fiscal.NormalizeMoney(req.MonthlyAmount, currency),
		Months:        req.Months,
	}
	if req.Zone != "" {
		zone, err := parseJurisdiction(req.Zone)
		if err != nil {
			h.writeEngineError(w, err)
			return
		}
		input.Zone = zone
	}

	result, err := calc.Honorarios(input, h.Rates)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dto := toHonorariosDTO(result)
	h.record(r.Context(), "honorarios", req, dto)
	writeJSON(w, http.StatusOK, dto)
}

// CalculateCedular computes the capital-gains result.
func (h *Handler) CalculateCedular(w http.ResponseWriter, r *http.Request) {
	var req CedularRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "bad_request", "")
		return
	}

	jurisdiction, err := parseJurisdiction(req.Jurisdiction)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	currency := parseCurrency(req.Currency)

	result, err := calc.Cedular(calc.CedularInput{
		PurchasePrice:      fiscal.NormalizeMoney(req.PurchasePrice, currency),
		SalePrice:          fiscal.NormalizeMoney(req.SalePrice, currency),
		DeductibleExpenses: fiscal.NormalizeMoney(req.DeductibleExpenses, currency),
		Jurisdiction:       jurisdiction,
		AcquisitionYear:    req.AcquisitionYear,
		SoleResidence:      req.SoleResidence,
	}, h.Rates)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dto := toCedularDTO(result)
	h.record(r.Context(), "cedular", req, dto)
	writeJSON(w, http.StatusOK, dto)
}

// CalculateAjustes computes the rent adjustment projection.
func (h *Handler) CalculateAjustes(w http.ResponseWriter, r *http.Request) {
	var req AjustesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "bad_request", "")
		return
	}

	currency := parseCurrency(req.Currency)
	result, err := calc.RentAdjustment(calc.AdjustmentInput{
		CurrentAmount: fiscal.NormalizeMoney(req.CurrentAmount, currency),
		Percentage:    fiscal.NewPercentFromDecimal(fiscal.NormalizeAmount(req.Percentage)),
		Period:        calc.AdjustmentPeriod(req.Period),
	})
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dto := toAjustesDTO(result)
	h.record(r.Context(), "ajustes", req, dto)
	writeJSON(w, http.StatusOK, dto)
}

// CalculateCAC computes the construction-index projection.
func (h *Handler) CalculateCAC(w http.ResponseWriter, r *http.Request) {
	var req CACRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "bad_request", "")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start_date format (use YYYY-MM-DD)", "validation_error", "start_date")
		return
	}

	result, err := indices.Project(indices.ProjectionInput{
		BaseAmount:     fiscal.NormalizeMoney(req.BaseAmount, fiscal.ARS),
		StartDate:      start,
		DurationMonths: req.DurationMonths,
	}, h.Index)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dto := toCACProjectionDTO(result)
	h.record(r.Context(), "cac", req, dto)
	writeJSON(w, http.StatusOK, dto)
}

// CalculateDaysBetween computes the calendar/business split.
func (h *Handler) CalculateDaysBetween(w http.ResponseWriter, r *http.Request) {
	var req DaysBetweenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "bad_request", "")
		return
	}

	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start format (use YYYY-MM-DD)", "validation_error", "start")
		return
	}
	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end format (use YYYY-MM-DD)", "validation_error", "end")
		return
	}

	result, err := fiscal.DaysBetween(start, end, h.Holidays)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dto := toDaysBetweenDTO(result)
	h.record(r.Context(), "plazos/days-between", req, dto)
	writeJSON(w, http.StatusOK, dto)
}

// CalculateDueDate computes the business-day deadline.
func (h *Handler) CalculateDueDate(w http.ResponseWriter, r *http.Request) {
	var req DueDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "bad_request", "")
		return
	}

	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start format (use YYYY-MM-DD)", "validation_error", "start")
		return
	}

	result, err := fiscal.DueDate(start, req.BusinessDays, h.Holidays)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dto := toDueDateDTO(result)
	h.record(r.Context(), "plazos/due-date", req, dto)
	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// REFERENCE HANDLERS
// =============================================================================

// GetHolidays returns the active holiday calendar.
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	all := h.Holidays.All()
	dtos := make([]HolidayDTO, len(all))
	for i, holiday := range all {
		dtos[i] = HolidayDTO{Date: holiday.Date.Format("2006-01-02"), Name: holiday.Name}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetRates returns the active rate table. Unlike calculator responses,
// the reference endpoint is the one place rates ARE exposed: it backs the
// admin screen, not the client-facing results.
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	stamp := make(map[string]float64, len(h.Rates.StampTax))
	for j, rate := range h.Rates.StampTax {
		v, _ := rate.Value.Float64()
		stamp[string(j)] = v
	}
	cedular := make(map[string]float64, len(h.Rates.Cedular))
	for j, rate := range h.Rates.Cedular {
		v, _ := rate.Value.Float64()
		cedular[string(j)] = v
	}

	vat, _ := h.Rates.VAT.Value.Float64()
	threshold, _ := h.Rates.StampExemptionThresholdARS.Float64()
	writeJSON(w, http.StatusOK, map[string]any{
		"vat_percent":                   vat,
		"stamp_tax":                     stamp,
		"stamp_exemption_threshold_ars": threshold,
		"cedular":                       cedular,
		"cedular_cutoff_year":           h.Rates.CedularCutoffYear,
	})
}

// =============================================================================
// HISTORY HANDLER
// =============================================================================

// ListHistory returns recent calculations, newest first.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	if h.History == nil {
		writeJSON(w, http.StatusOK, []CalculationRecordDTO{})
		return
	}

	records, err := h.History.ListCalculations(r.Context(), 50)
	if err != nil {
		h.Logger.Error("list history failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list history", "internal_error", "")
		return
	}

	dtos := make([]CalculationRecordDTO, len(records))
	for i, rec := range records {
		dtos[i] = CalculationRecordDTO{
			ID:         rec.ID,
			Calculator: rec.Calculator,
			Request:    rec.Request,
			Result:     rec.Result,
			CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

// resolveExchangeRate normalizes a caller-supplied quote, substituting the
// configured fallback for empty or garbage input.
func (h *Handler) resolveExchangeRate(raw string) fiscal.ExchangeRate {
	if raw == "" {
		return h.FallbackFX
	}
	value := fiscal.NormalizeAmount(raw)
	if !value.IsPositive() {
		return h.FallbackFX
	}
	return fiscal.ExchangeRate{ARSPerUSD: value}
}

// record appends the calculation to the history store. Best effort: a
// failed insert is logged and ignored, never failing the calculation.
func (h *Handler) record(ctx context.Context, calculator string, request, result any) {
	if h.History == nil {
		return
	}
	reqJSON, _ := json.Marshal(request)
	resJSON, _ := json.Marshal(result)
	if err := h.History.SaveCalculation(ctx, calculator, string(reqJSON), string(resJSON)); err != nil {
		h.Logger.Warn("history append failed", zap.String("calculator", calculator), zap.Error(err))
	}
}

// writeEngineError maps engine errors onto HTTP statuses. Validation goes
// back to the caller; configuration defects are logged and masked.
func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case fiscal.IsValidation(err):
		field := ""
		var vErr *fiscal.ValidationError
		if errors.As(err, &vErr) {
			field = vErr.Field
		}
		writeError(w, http.StatusBadRequest, err.Error(), "validation_error", field)
	case fiscal.IsConfiguration(err):
		h.Logger.Error("rate table defect", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal configuration error", "configuration_error", "")
	default:
		h.Logger.Error("calculation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Calculation failed", "internal_error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, code, field string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code, Field: field})
}

// =============================================================================
// ENUM PARSING - Unknown keys are the CALLER's error, not a table defect
// =============================================================================

func parseJurisdiction(raw string) (fiscal.Jurisdiction, error) {
	switch fiscal.Jurisdiction(raw) {
	case fiscal.CABA, fiscal.PBA:
		return fiscal.Jurisdiction(raw), nil
	}
	return "", fiscal.NewValidationError("jurisdiction", "must be caba or pba")
}

func parseRole(raw string) (fiscal.Role, error) {
	switch fiscal.Role(raw) {
	case fiscal.RoleBuyer, fiscal.RoleSeller, fiscal.RoleFirstRegistration:
		return fiscal.Role(raw), nil
	}
	return "", fiscal.NewValidationError("role", "must be comprador, vendedor or primera-escritura")
}

func parseOperation(raw string) (fiscal.OperationType, error) {
	switch fiscal.OperationType(raw) {
	case fiscal.OperationSale, fiscal.OperationResidentialRental,
		fiscal.OperationCommercialRental, fiscal.OperationTemporaryRental:
		return fiscal.OperationType(raw), nil
	}
	return "", fiscal.NewValidationError("operation", "unknown operation type")
}

func parseCurrency(raw string) fiscal.Currency {
	if fiscal.Currency(raw) == fiscal.USD {
		return fiscal.USD
	}
	return fiscal.ARS
}
