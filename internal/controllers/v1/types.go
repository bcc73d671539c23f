// Package v1 implements the v1 API of the pennyflow backend.
package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/pennyflow/backend/internal/models"
	"github.com/pennyflow/backend/internal/planner"
	"github.com/pennyflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Amount is a fixed-point decimal that serializes with exactly two
// fractional digits.
type Amount struct {
	decimal.Decimal
}

func newAmount(d decimal.Decimal) Amount {
	return Amount{d}
}

// MarshalJSON implements the json.Marshaler interface.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.StringFixed(2) + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Both quoted
// and bare numbers are accepted.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

// Date is a calendar date that serializes as YYYY-MM-DD.
type Date struct {
	time.Time
}

func newDate(t time.Time) Date {
	return Date{t}
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date is
// accepted as "YYYY-MM-DD" or an RFC3339 timestamp.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	for _, pattern := range []string{"2006-01-02", time.RFC3339} {
		t, err := time.Parse(pattern, value)
		if err != nil {
			continue
		}

		d.Time = t
		return nil
	}

	return fmt.Errorf("parsing date %q: unknown format", value)
}

// QueryMonth binds the month query parameter. A zero value means the
// current month.
type QueryMonth struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2024-01"` // Year and month in YYYY-MM format
}

// monthOrCurrent resolves the bound month, defaulting to the current
// month.
func (q QueryMonth) monthOrCurrent() types.Month {
	if q.Month.IsZero() {
		now := time.Now().In(time.UTC)
		return types.NewMonth(now.Year(), now.Month())
	}

	return types.NewMonth(q.Month.Year(), q.Month.Month())
}

// Pagination contains information about the pagination for list
// endpoint calls.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// newPlanner wires the forecasting core to the database-backed reader.
func newPlanner() *planner.Planner {
	reader := models.NewReader(models.DB)
	return planner.New(reader, reader, reader, planner.Options{})
}
