package holiday

import "errors"

// Holiday domain errors
var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayOverlap  = errors.New("holiday overlaps an existing holiday")
)
