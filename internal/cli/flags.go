package cli

import (
	"fmt"
	"time"

	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a --date flag holding a day-granularity time.
// The zero value means "today".
type dateValue struct {
	day time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func (d *dateValue) String() string {
	if d.day.IsZero() {
		return ""
	}
	return d.day.Format(domain.DateLayout)
}

func (d *dateValue) Set(s string) error {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	d.day = t
	return nil
}

func (d *dateValue) Type() string { return "date" }

// Day returns the flag's date, defaulting to today when unset.
func (d *dateValue) Day() time.Time {
	if d.day.IsZero() {
		return today()
	}
	return d.day
}
