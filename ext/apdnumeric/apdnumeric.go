// Package apdnumeric decodes numeric and money fields into
// github.com/cockroachdb/apd decimals instead of the default
// github.com/shopspring/decimal type.
package apdnumeric

import (
	"github.com/cockroachdb/apd"

	"github.com/pgkit/pgcodec"
)

// DecimalFunc returns a pgcodec.DecimalFunc producing *apd.Decimal values:
//
//	cfg.SetDecimalFunc(apdnumeric.DecimalFunc())
func DecimalFunc() pgcodec.DecimalFunc {
	return func(s string) (any, error) {
		d, _, err := apd.NewFromString(s)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}
