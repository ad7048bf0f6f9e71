package template

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// MarshalJSON renders k as its wire-format spelling, e.g.
// "FinishToStart" rather than 0.
func (k DependencyKind) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(k.String())
}

// UnmarshalJSON parses a wire-format dependency kind spelling. It only runs
// when the field is present in the input; an absent field keeps the zero
// value, FinishToStart, and an empty string also maps to FinishToStart.
func (k *DependencyKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "", "FinishToStart":
		*k = FinishToStart
	case "StartToStart":
		*k = StartToStart
	case "FinishToFinish":
		*k = FinishToFinish
	case "StartToFinish":
		*k = StartToFinish
	default:
		return fmt.Errorf("template: unknown dependency kind %q", s)
	}
	return nil
}

// MarshalJSON renders k as its wire-format spelling.
func (k ResourceKind) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(k.String())
}

// UnmarshalJSON parses a wire-format resource kind spelling.
func (k *ResourceKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "", "Equipment":
		*k = Equipment
	case "People":
		*k = People
	case "Consumable":
		*k = Consumable
	default:
		return fmt.Errorf("template: unknown resource kind %q", s)
	}
	return nil
}

// MarshalJSON renders p as its wire-format spelling.
func (p TimingPolicy) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(p.String())
}

// UnmarshalJSON parses a wire-format timing policy spelling.
func (p *TimingPolicy) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "", "Asap":
		*p = Asap
	case "Alap":
		*p = Alap
	default:
		return fmt.Errorf("template: unknown timing policy %q", s)
	}
	return nil
}

// MarshalJSON renders dt as the minute-precision ISO string used on the
// wire, e.g. "2026-03-01T17:00".
func (dt LocalDateTime) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(dt.String())
}

// UnmarshalJSON parses the minute-precision ISO string into dt.
func (dt *LocalDateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
