// Package plant holds the physical component models of the hydro plant. Each component owns its
// own parameters and knows nothing about the others; the simulator wires them together.
package plant

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	z "github.com/Oudwins/zog"
)

const (
	WaterDensity    = 1000.0 // kg/m³
	Gravity         = 9.81   // m/s²
	WattsPerMW      = 1_000_000.0
	MaxSafeFlowRate = 100.0 // m³/s
)

// ErrOutOfRange is wrapped by every constructor and setter that rejects a value.
var ErrOutOfRange = errors.New("out-of-range parameter")

var nonNegativeSchema = z.Float64().GTE(0, z.Message("must not be negative"))

type rateInput struct {
	Rate float64
}

var rateSchema = z.Struct(z.Shape{
	"Rate": nonNegativeSchema,
})

func validate(schema *z.StructSchema, input any) error {
	if err := requireFinite(input); err != nil {
		return err
	}

	issues := schema.Validate(input)
	if len(issues) == 0 {
		return nil
	}

	fields := make([]string, 0, len(issues))
	for field := range issues {
		if strings.HasPrefix(field, "$") {
			continue
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		for _, issue := range issues[field] {
			msgs = append(msgs, fmt.Sprintf("%s: %v", field, issue))
		}
	}
	if len(msgs) == 0 {
		return ErrOutOfRange
	}
	return fmt.Errorf("%w: %s", ErrOutOfRange, strings.Join(msgs, "; "))
}

// requireFinite rejects NaN and ±Inf in any float field of the input struct; zog range tests
// let +Inf through and compare NaN inconsistently.
func requireFinite(input any) error {
	v := reflect.Indirect(reflect.ValueOf(input))
	if v.Kind() != reflect.Struct {
		return nil
	}
	for i := range v.NumField() {
		field := v.Field(i)
		if field.Kind() != reflect.Float64 {
			continue
		}
		if f := field.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %s: must be finite, got %v", ErrOutOfRange, v.Type().Field(i).Name, f)
		}
	}
	return nil
}

func validateRate(rate float64) error {
	return validate(rateSchema, &rateInput{Rate: rate})
}

// clamp maps NaN to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
