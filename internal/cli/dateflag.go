package cli

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/orgplant/internal/org"
)

// dateValue is a pflag.Value for date flags. It validates input eagerly so
// bad dates fail at flag parsing, but keeps the raw string: relative forms
// like "+3d" are resolved later against the service clock.
type dateValue struct {
	raw string
	now func() time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(now func() time.Time) *dateValue {
	return &dateValue{now: now}
}

func (d *dateValue) String() string {
	return d.raw
}

func (d *dateValue) Set(s string) error {
	if _, err := org.ParseDate(s, d.now()); err != nil {
		return err
	}
	d.raw = s
	return nil
}

func (d *dateValue) Type() string {
	return "date"
}
