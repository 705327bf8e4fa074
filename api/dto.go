/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the
  engine's decimal-based types from the wire format.

NUMERIC FIELDS:
  Request amounts are STRINGS and run through the shared normalizer, so
  the API accepts exactly what the forms produce ("US$ 1.500,50", "1200",
  ""). Responses carry raw float64 values for programmatic use plus
  es-AR display strings rendered by the presentation formatter.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO / *Response: Types returned to clients

SEE ALSO:
  - handlers.go: Uses these types
  - fiscal/normalize.go: The string-coercion policy
*/
package api

import (
	"github.com/habitar/fiscal-engine/calc"
	"github.com/habitar/fiscal-engine/fiscal"
	"github.com/habitar/fiscal-engine/indices"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// EscrituraRequest is the closing-cost calculation request.
type EscrituraRequest struct {
	Role             string `json:"role"`
	Jurisdiction     string `json:"jurisdiction"`
	ExchangeRate     string `json:"exchange_rate,omitempty"` // empty -> fallback
	WritingPrice     string `json:"writing_price"`           // USD
	TransactionPrice string `json:"transaction_price"`       // USD
	StampTaxExempt   bool   `json:"stamp_tax_exempt,omitempty"`
}

// HonorariosRequest is the commission calculation request.
type HonorariosRequest struct {
	Operation     string `json:"operation"`
	Amount        string `json:"amount,omitempty"`
	Zone          string `json:"zone,omitempty"`
	MonthlyAmount string `json:"monthly_amount,omitempty"`
	Months        int    `json:"months,omitempty"`
	Currency      string `json:"currency,omitempty"` // ARS (default) or USD
}

// CedularRequest is the capital-gains calculation request.
type CedularRequest struct {
	PurchasePrice      string `json:"purchase_price"`
	SalePrice          string `json:"sale_price"`
	DeductibleExpenses string `json:"deductible_expenses,omitempty"`
	Jurisdiction       string `json:"jurisdiction"`
	AcquisitionYear    int    `json:"acquisition_year,omitempty"`
	SoleResidence      bool   `json:"sole_residence,omitempty"`
	Currency           string `json:"currency,omitempty"`
}

// AjustesRequest is the rent adjustment request.
type AjustesRequest struct {
	CurrentAmount string `json:"current_amount"`
	Percentage    string `json:"percentage"`
	Period        string `json:"period"` // mensual, trimestral, semestral, anual
	Currency      string `json:"currency,omitempty"`
}

// CACRequest is the construction-index projection request.
type CACRequest struct {
	BaseAmount     string `json:"base_amount"` // ARS
	StartDate      string `json:"start_date"`  // YYYY-MM-DD
	DurationMonths int    `json:"duration_months"`
}

// DaysBetweenRequest is the calendar/business-day split request.
type DaysBetweenRequest struct {
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`   // YYYY-MM-DD
}

// DueDateRequest is the business-day deadline request.
type DueDateRequest struct {
	Start        string `json:"start"` // YYYY-MM-DD
	BusinessDays int    `json:"business_days"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// LineItemDTO is one cost line in an escritura breakdown.
type LineItemDTO struct {
	Label       string  `json:"label"`
	RatePercent float64 `json:"rate_percent"`
	Amount      float64 `json:"amount"`
	Display     string  `json:"display"`
}

// BreakdownDTO is the escritura calculation response.
type BreakdownDTO struct {
	Role               string        `json:"role"`
	Jurisdiction       string        `json:"jurisdiction"`
	TransactionPrice   float64       `json:"transaction_price"`
	Items              []LineItemDTO `json:"items"`
	TotalCosts         float64       `json:"total_costs"`
	TotalCostsDisplay  string        `json:"total_costs_display"`
	FinalAmount        float64       `json:"final_amount"`
	FinalAmountDisplay string        `json:"final_amount_display"`
}

// HonorariosDTO is the commission response. It deliberately carries party
// amounts only, never the percentages applied (presentation contract).
type HonorariosDTO struct {
	Operation         string  `json:"operation"`
	BaseAmount        float64 `json:"base_amount"`
	OwnerParty        string  `json:"owner_party"`
	OwnerFee          float64 `json:"owner_fee"`
	OwnerFeeDisplay   string  `json:"owner_fee_display"`
	ClientParty       string  `json:"client_party"`
	ClientFee         float64 `json:"client_fee"`
	ClientFeeDisplay  string  `json:"client_fee_display"`
}

// CedularDTO is the capital-gains response. Tax is null when the regime
// does not apply; Reason says why.
type CedularDTO struct {
	Gain       float64  `json:"gain"`
	Applies    bool     `json:"applies"`
	Tax        *float64 `json:"tax"`
	TaxDisplay string   `json:"tax_display,omitempty"`
	Reason     string   `json:"reason,omitempty"`
}

// AjustesDTO is the rent adjustment response.
type AjustesDTO struct {
	CurrentAmount    float64 `json:"current_amount"`
	Increase         float64 `json:"increase"`
	NewAmount        float64 `json:"new_amount"`
	NewAmountDisplay string  `json:"new_amount_display"`
	PeriodMultiplier int     `json:"period_multiplier"`
	TotalIncrease    float64 `json:"total_increase"`
	TotalNewAmount   float64 `json:"total_new_amount"`
}

// CACEntryDTO is one projected month.
type CACEntryDTO struct {
	Date          string  `json:"date"` // YYYY-MM
	Variation     float64 `json:"variation_percent"`
	IndexValue    float64 `json:"index_value"`
	CumulativePct float64 `json:"cumulative_percent"`
	Amount        float64 `json:"amount"`
	Display       string  `json:"display"`
	Estimated     bool    `json:"estimated"`
}

// CACProjectionDTO is the construction-index projection response.
type CACProjectionDTO struct {
	BaseAmount  float64       `json:"base_amount"`
	StartDate   string        `json:"start_date"`
	Entries     []CACEntryDTO `json:"entries"`
	FinalAmount float64       `json:"final_amount"`
}

// NonBusinessDayDTO explains one skipped day.
type NonBusinessDayDTO struct {
	Date   string `json:"date"`
	Kind   string `json:"kind"` // weekend | holiday
	Reason string `json:"reason"`
}

// DaysBetweenDTO is the calendar split response.
type DaysBetweenDTO struct {
	Start             string              `json:"start"`
	End               string              `json:"end"`
	TotalCalendarDays int                 `json:"total_calendar_days"`
	BusinessDays      int                 `json:"business_days"`
	Weekends          int                 `json:"weekends"`
	Holidays          int                 `json:"holidays"`
	NonBusinessDays   []NonBusinessDayDTO `json:"non_business_days"`
}

// DueDateDTO is the deadline projection response.
type DueDateDTO struct {
	Start             string   `json:"start"`
	BusinessDays      int      `json:"business_days"`
	DueDate           string   `json:"due_date"`
	TotalCalendarDays int      `json:"total_calendar_days"`
	SkippedHolidays   []string `json:"skipped_holidays"`
	SkippedWeekend    int      `json:"skipped_weekend_days"`
}

// HolidayDTO is one calendar holiday.
type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// CalculationRecordDTO is one history entry.
type CalculationRecordDTO struct {
	ID         int64  `json:"id"`
	Calculator string `json:"calculator"`
	Request    string `json:"request"`
	Result     string `json:"result"`
	CreatedAt  string `json:"created_at"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toBreakdownDTO(b *calc.Breakdown) BreakdownDTO {
	items := make([]LineItemDTO, len(b.Items))
	for i, item := range b.Items {
		amount, _ := item.Amount.Value.Float64()
		rate, _ := item.Rate.Value.Float64()
		items[i] = LineItemDTO{
			Label:       item.Label,
			RatePercent: rate,
			Amount:      amount,
			Display:     fiscal.FormatMoney(item.Amount),
		}
	}

	tx, _ := b.TransactionPrice.Value.Float64()
	total, _ := b.TotalCosts.Value.Float64()
	final, _ := b.FinalAmount.Value.Float64()
	return BreakdownDTO{
		Role:               string(b.Role),
		Jurisdiction:       string(b.Jurisdiction),
		TransactionPrice:   tx,
		Items:              items,
		TotalCosts:         total,
		TotalCostsDisplay:  fiscal.FormatMoney(b.TotalCosts),
		FinalAmount:        final,
		FinalAmountDisplay: fiscal.FormatMoney(b.FinalAmount),
	}
}

func toHonorariosDTO(r *calc.CommissionResult) HonorariosDTO {
	base, _ := r.BaseAmount.Value.Float64()
	owner, _ := r.OwnerFee.Value.Float64()
	client, _ := r.ClientFee.Value.Float64()
	return HonorariosDTO{
		Operation:        string(r.Operation),
		BaseAmount:       base,
		OwnerParty:       r.OwnerParty,
		OwnerFee:         owner,
		OwnerFeeDisplay:  fiscal.FormatMoney(r.OwnerFee),
		ClientParty:      r.ClientParty,
		ClientFee:        client,
		ClientFeeDisplay: fiscal.FormatMoney(r.ClientFee),
	}
}

func toCedularDTO(r *calc.CedularResult) CedularDTO {
	gain, _ := r.Gain.Value.Float64()
	dto := CedularDTO{
		Gain:    gain,
		Applies: r.Applies,
		Reason:  string(r.Reason),
	}
	if r.Tax != nil {
		tax, _ := r.Tax.Value.Float64()
		dto.Tax = &tax
		dto.TaxDisplay = fiscal.FormatMoney(*r.Tax)
	}
	return dto
}

func toAjustesDTO(r *calc.AdjustmentResult) AjustesDTO {
	current, _ := r.CurrentAmount.Value.Float64()
	increase, _ := r.Increase.Value.Float64()
	newAmount, _ := r.NewAmount.Value.Float64()
	totalIncrease, _ := r.TotalIncrease.Value.Float64()
	totalNew, _ := r.TotalNewAmount.Value.Float64()
	return AjustesDTO{
		CurrentAmount:    current,
		Increase:         increase,
		NewAmount:        newAmount,
		NewAmountDisplay: fiscal.FormatMoney(r.NewAmount),
		PeriodMultiplier: r.PeriodMultiplier,
		TotalIncrease:    totalIncrease,
		TotalNewAmount:   totalNew,
	}
}

func toCACProjectionDTO(p *indices.Projection) CACProjectionDTO {
	entries := make([]CACEntryDTO, len(p.Entries))
	for i, e := range p.Entries {
		variation, _ := e.Variation.Value.Float64()
		index, _ := e.IndexValue.Float64()
		cumulative, _ := e.CumulativePct.Float64()
		amount, _ := e.Amount.Value.Float64()
		entries[i] = CACEntryDTO{
			Date:          e.Date.Format("2006-01"),
			Variation:     variation,
			IndexValue:    index,
			CumulativePct: cumulative,
			Amount:        amount,
			Display:       fiscal.FormatMoney(e.Amount),
			Estimated:     e.Estimated,
		}
	}

	base, _ := p.BaseAmount.Value.Float64()
	final, _ := p.FinalAmount.Value.Float64()
	return CACProjectionDTO{
		BaseAmount:  base,
		StartDate:   p.StartDate.Format("2006-01-02"),
		Entries:     entries,
		FinalAmount: final,
	}
}

func toDaysBetweenDTO(r *fiscal.DaysBetweenResult) DaysBetweenDTO {
	details := make([]NonBusinessDayDTO, len(r.NonBusinessDays))
	for i, d := range r.NonBusinessDays {
		details[i] = NonBusinessDayDTO{
			Date:   d.Date.Format("2006-01-02"),
			Kind:   d.Kind,
			Reason: d.Reason,
		}
	}
	return DaysBetweenDTO{
		Start:             r.Start.Format("2006-01-02"),
		End:               r.End.Format("2006-01-02"),
		TotalCalendarDays: r.TotalCalendarDays,
		BusinessDays:      r.BusinessDays,
		Weekends:          r.Weekends,
		Holidays:          r.Holidays,
		NonBusinessDays:   details,
	}
}

func toDueDateDTO(r *fiscal.DueDateResult) DueDateDTO {
	skipped := make([]string, len(r.SkippedHolidays))
	for i, h := range r.SkippedHolidays {
		skipped[i] = h.Date.Format("2006-01-02") + " " + h.Name
	}
	return DueDateDTO{
		Start:             r.Start.Format("2006-01-02"),
		BusinessDays:      r.BusinessDays,
		DueDate:           r.DueDate.Format("2006-01-02"),
		TotalCalendarDays: r.TotalCalendarDays,
		SkippedHolidays:   skipped,
		SkippedWeekend:    r.SkippedWeekend,
	}
}
