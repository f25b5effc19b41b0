package holiday

import (
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// HOLIDAY DTOs
// ========================================

type CreateHolidayRequest struct {
	Name             string   `json:"name"`
	StartDate        string   `json:"start_date"`
	EndDate          *string  `json:"end_date,omitempty"`
	Type             string   `json:"type"`
	Category         string   `json:"category"`
	LeaveType        string   `json:"leave_type"`
	SalaryPolicy     string   `json:"salary_policy"`
	SalaryMultiplier *float64 `json:"salary_multiplier,omitempty"`
	AllowWork        *bool    `json:"allow_work,omitempty"`
	Description      *string  `json:"description,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
	AppliesTo        string   `json:"applies_to"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if r.Type == "" {
		r.Type = string(TypeSingleDay)
	}
	switch Type(r.Type) {
	case TypeSingleDay:
		// end_date ignored for single-day holidays
	case TypePeriod:
		if r.EndDate == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date is required for period holidays",
			})
		} else if end, endOK := validator.IsValidDate(*r.EndDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		} else if ok && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: single_day, period",
		})
	}

	if r.Category == "" {
		r.Category = string(CategoryNational)
	}
	if !validator.IsInSlice(r.Category, CategoryValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "unknown holiday category",
		})
	}

	if r.LeaveType == "" {
		r.LeaveType = string(LeavePaidHoliday)
	}
	if !validator.IsInSlice(r.LeaveType, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: paid_holiday, unpaid_leave, overtime_holiday",
		})
	}

	if r.SalaryPolicy == "" {
		r.SalaryPolicy = string(PolicyFullPay)
	}
	if !validator.IsInSlice(r.SalaryPolicy, SalaryPolicyValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_policy",
			Message: "salary_policy must be one of: full_pay, no_pay, multiplier_pay, partial_pay",
		})
	}

	if r.SalaryMultiplier != nil && (*r.SalaryMultiplier < 0.0 || *r.SalaryMultiplier > 9.99) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_multiplier",
			Message: "salary_multiplier must be between 0.0 and 9.99",
		})
	}

	if r.AppliesTo == "" {
		r.AppliesTo = string(AppliesToAll)
	}
	if !validator.IsInSlice(r.AppliesTo, AppliesToValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "applies_to",
			Message: "applies_to must be one of: all, employee_only, lecturer_only",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToHoliday builds the entity from a validated request.
func (r *CreateHolidayRequest) ToHoliday() Holiday {
	start, _ := time.Parse("2006-01-02", r.StartDate)

	var end *time.Time
	if Type(r.Type) == TypePeriod && r.EndDate != nil {
		e, _ := time.Parse("2006-01-02", *r.EndDate)
		end = &e
	}

	multiplier := decimal.NewFromInt(1)
	if r.SalaryMultiplier != nil {
		multiplier = decimal.NewFromFloat(*r.SalaryMultiplier)
	}

	allowWork := false
	if r.AllowWork != nil {
		allowWork = *r.AllowWork
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return Holiday{
		Name:             r.Name,
		StartDate:        start,
		EndDate:          end,
		Type:             Type(r.Type),
		Category:         Category(r.Category),
		LeaveType:        LeaveType(r.LeaveType),
		SalaryPolicy:     SalaryPolicy(r.SalaryPolicy),
		SalaryMultiplier: multiplier,
		AllowWork:        allowWork,
		Description:      r.Description,
		IsActive:         isActive,
		AppliesTo:        AppliesTo(r.AppliesTo),
	}
}

// BulkCreateRequest loads a batch of holidays at once, typically a whole
// year's calendar.
type BulkCreateRequest struct {
	Holidays []CreateHolidayRequest `json:"holidays"`
}

// BulkItemError reports why one entry of a bulk create was rejected.
type BulkItemError struct {
	Index   int    `json:"index"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

type BulkCreateResult struct {
	Created []HolidayResponse `json:"created"`
	Errors  []BulkItemError   `json:"errors,omitempty"`
}

type HolidayResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date,omitempty"`
	Type             string  `json:"type"`
	Category         string  `json:"category"`
	LeaveType        string  `json:"leave_type"`
	SalaryPolicy     string  `json:"salary_policy"`
	SalaryMultiplier float64 `json:"salary_multiplier"`
	AllowWork        bool    `json:"allow_work"`
	Description      *string `json:"description,omitempty"`
	IsActive         bool    `json:"is_active"`
	AppliesTo        string  `json:"applies_to"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func ToResponse(h Holiday) HolidayResponse {
	var end *string
	if h.EndDate != nil {
		s := h.EndDate.Format("2006-01-02")
		end = &s
	}
	multiplier, _ := h.SalaryMultiplier.Float64()
	return HolidayResponse{
		ID:               h.ID,
		Name:             h.Name,
		StartDate:        h.StartDate.Format("2006-01-02"),
		EndDate:          end,
		Type:             string(h.Type),
		Category:         string(h.Category),
		LeaveType:        string(h.LeaveType),
		SalaryPolicy:     string(h.SalaryPolicy),
		SalaryMultiplier: multiplier,
		AllowWork:        h.AllowWork,
		Description:      h.Description,
		IsActive:         h.IsActive,
		AppliesTo:        string(h.AppliesTo),
		CreatedAt:        h.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        h.UpdatedAt.Format(time.RFC3339),
	}
}

// HolidayDateResponse is one calendar date of a (possibly multi-day) holiday,
// produced when a period is expanded for display.
type HolidayDateResponse struct {
	Date             string  `json:"date"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	SalaryMultiplier float64 `json:"salary_multiplier"`
	IsPeriodPart     bool    `json:"is_period_part"`
	PeriodDay        int     `json:"period_day,omitempty"`
	TotalPeriodDays  int     `json:"total_period_days,omitempty"`
}

type IsHolidayResponse struct {
	IsHoliday bool             `json:"is_holiday"`
	Holiday   *HolidayResponse `json:"holiday,omitempty"`
}
