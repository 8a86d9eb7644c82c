package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/boids/common"
	"github.com/milk9111/boids/ecs"
	"github.com/milk9111/boids/prefabs"
)

// ErrScenario is returned when a scenario script fails or yields bad agents.
var ErrScenario = errors.New("entity: bad scenario")

// RunScenario loads the named script from prefabs and evaluates it.
func RunScenario(name string, count int, p ecs.Params, rng common.Rand) ([]Placement, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrScenario, name, err)
	}
	placements, err := EvalScenario(src, count, p, rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return placements, nil
}

// EvalScenario runs a tengo scenario script. The script sees the globals
// count, half_width, half_height and random(), and must leave an array
// named agents whose elements are maps with x, y and either fx/fy or
// heading (radians counter-clockwise from +y).
func EvalScenario(src []byte, count int, p ecs.Params, rng common.Rand) (placements []Placement, err error) {
	// the tengo VM panics on some runtime faults, such as integer division by zero
	defer func() {
		if r := recover(); r != nil {
			placements = nil
			err = fmt.Errorf("%w: %v", ErrScenario, r)
		}
	}()

	script := tengo.NewScript(src)
	_ = script.Add("count", count)
	_ = script.Add("half_width", p.HalfWidth)
	_ = script.Add("half_height", p.HalfHeight)
	_ = script.Add("random", &tengo.UserFunction{Name: "random", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 0 {
			return nil, tengo.ErrWrongNumArguments
		}
		return &tengo.Float{Value: rng.Float64()}, nil
	}})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScenario, err)
	}
	if !compiled.IsDefined("agents") {
		return nil, fmt.Errorf("%w: script does not define agents", ErrScenario)
	}

	agents := compiled.Get("agents")
	raw, ok := tengo.ToInterface(agents.Object()).([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: agents must be an array, got %s", ErrScenario, agents.ValueType())
	}

	out := make([]Placement, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: agents[%d] must be a map", ErrScenario, i)
		}
		pl, err := placementFromMap(m)
		if err != nil {
			return nil, fmt.Errorf("%w: agents[%d]: %v", ErrScenario, i, err)
		}
		out = append(out, pl)
	}
	return out, nil
}

func placementFromMap(m map[string]interface{}) (Placement, error) {
	var pl Placement
	var err error
	if pl.X, err = number(m, "x"); err != nil {
		return pl, err
	}
	if pl.Y, err = number(m, "y"); err != nil {
		return pl, err
	}

	if _, ok := m["heading"]; ok {
		h, err := number(m, "heading")
		if err != nil {
			return pl, err
		}
		pl.FX, pl.FY = -math.Sin(h), math.Cos(h)
		return pl, nil
	}

	if pl.FX, err = number(m, "fx"); err != nil {
		return pl, err
	}
	if pl.FY, err = number(m, "fy"); err != nil {
		return pl, err
	}
	if pl.FX == 0 && pl.FY == 0 {
		return pl, fmt.Errorf("heading (fx, fy) must not be zero")
	}
	return pl, nil
}

func number(m map[string]interface{}, key string) (float64, error) {
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("missing %q", key)
	}
	var f float64
	switch n := v.(type) {
	case int64:
		f = float64(n)
	case float64:
		f = n
	default:
		return 0, fmt.Errorf("%q must be a number, got %T", key, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q must be finite", key)
	}
	return f, nil
}
