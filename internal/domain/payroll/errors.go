package payroll

import "errors"

var ErrReportNotFound = errors.New("no salary reports generated for this period")
