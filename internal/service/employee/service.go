package employee

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/payroll"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/database"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/export"
	"github.com/facetrack-hrm/attendance-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type EmployeeService struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	reportRepo     payroll.SalaryReportRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	reportRepo payroll.SalaryReportRepository,
) *EmployeeService {
	return &EmployeeService{
		db:             db,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		reportRepo:     reportRepo,
	}
}

// Create implements the employee create operation.
func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEmployee())
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get returns one employee by business key.
func (s *EmployeeService) Get(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// List returns the full roster ordered by business key.
func (s *EmployeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Update applies the provided fields to an existing employee.
func (s *EmployeeService) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Role != nil {
		e.Role = employee.Role(*req.Role)
	}
	if req.HourlyRate != nil {
		e.HourlyRate = decimal.NewFromFloat(*req.HourlyRate)
	}
	if req.StandardWorkHours != nil {
		e.StandardWorkHours = *req.StandardWorkHours
	}
	if req.ScheduleType != nil {
		e.ScheduleType = employee.ScheduleType(*req.ScheduleType)
	}

	updated, err := s.employeeRepo.Update(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// UpdateSchedule replaces the employee's weekly work schedule.
func (s *EmployeeService) UpdateSchedule(ctx context.Context, employeeID string, req employee.UpdateScheduleRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e.WorkSchedule = req.WorkSchedule
	if req.StandardWorkHours != nil {
		e.StandardWorkHours = *req.StandardWorkHours
	}
	if req.ScheduleType != nil {
		e.ScheduleType = employee.ScheduleType(*req.ScheduleType)
	}

	updated, err := s.employeeRepo.Update(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// Delete removes an employee with their attendance records and salary
// reports in one transaction.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.attendanceRepo.DeleteByEmployee(txCtx, employeeID); err != nil {
			return err
		}
		if err := s.reportRepo.DeleteByEmployee(txCtx, employeeID); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, employeeID)
	})
}

var csvHeader = []string{"employee_id", "full_name", "role", "hourly_rate", "standard_work_hours", "schedule_type"}

// ImportCSV ingests a roster CSV. Rows with problems are reported
// individually without aborting the batch; already-registered ids are
// counted as duplicates and skipped.
func (s *EmployeeService) ImportCSV(ctx context.Context, r io.Reader) (employee.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return employee.ImportResult{}, fmt.Errorf("read csv: %w", err)
	}

	result := employee.ImportResult{}
	for i, row := range rows {
		line := i + 1

		// Exports carry a UTF-8 BOM; strip it before the header check.
		if i == 0 && len(row) > 0 {
			row[0] = strings.TrimPrefix(row[0], "\uFEFF")
			if strings.EqualFold(strings.TrimSpace(row[0]), "employee_id") {
				continue
			}
		}
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}

		result.TotalRows++

		req, err := rowToRequest(row)
		if err != nil {
			result.Errors = append(result.Errors, employee.ImportRowError{Line: line, Message: err.Error()})
			continue
		}
		if err := req.Validate(); err != nil {
			result.Errors = append(result.Errors, employee.ImportRowError{Line: line, Message: err.Error()})
			continue
		}

		if _, err := s.employeeRepo.Create(ctx, req.ToEmployee()); err != nil {
			if errors.Is(err, employee.ErrEmployeeIDExists) {
				result.Duplicates++
				result.DuplicateIDs = append(result.DuplicateIDs, req.EmployeeID)
				continue
			}
			result.Errors = append(result.Errors, employee.ImportRowError{Line: line, Message: err.Error()})
			continue
		}

		result.Imported++
	}

	slog.Info("Imported employees from CSV", "imported", result.Imported, "duplicates", result.Duplicates, "errors", len(result.Errors))
	return result, nil
}

func rowToRequest(row []string) (employee.CreateEmployeeRequest, error) {
	if len(row) < 4 {
		return employee.CreateEmployeeRequest{}, fmt.Errorf("expected at least 4 columns, got %d", len(row))
	}

	req := employee.CreateEmployeeRequest{
		EmployeeID: strings.TrimSpace(row[0]),
		FullName:   strings.TrimSpace(row[1]),
		Role:       strings.TrimSpace(strings.ToLower(row[2])),
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return employee.CreateEmployeeRequest{}, fmt.Errorf("invalid hourly_rate %q", row[3])
	}
	req.HourlyRate = rate

	if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
		hours, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
		if err != nil {
			return employee.CreateEmployeeRequest{}, fmt.Errorf("invalid standard_work_hours %q", row[4])
		}
		req.StandardWorkHours = &hours
	}
	if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
		req.ScheduleType = strings.TrimSpace(strings.ToLower(row[5]))
	}

	return req, nil
}

// ExportCSV writes the full roster as a UTF-8 CSV with a BOM so spreadsheet
// tools pick up the encoding.
func (s *EmployeeService) ExportCSV(ctx context.Context, w io.Writer) error {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			e.EmployeeID,
			e.FullName,
			string(e.Role),
			e.HourlyRate.String(),
			strconv.FormatFloat(e.StandardWorkHours, 'f', -1, 64),
			string(e.ScheduleType),
		})
	}

	return export.WriteCSV(w, csvHeader, rows)
}

// ExportTemplate writes an import template with one example row.
func (s *EmployeeService) ExportTemplate(w io.Writer) error {
	example := [][]string{
		{"EMP001", "Jane Doe", "employee", "50000", "8", "fixed"},
	}
	return export.WriteCSV(w, csvHeader, example)
}
