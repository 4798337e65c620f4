package wizard

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/orbitgen/internal/celestial"
)

// MaxAttempts bounds how often a question is repeated after invalid answers.
const MaxAttempts = 3

func ask[T any](ctx context.Context, p Prompter, q Question, parse func(string) (T, error)) (T, error) {
	var zero T
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		answer, err := p.Ask(ctx, q)
		if err != nil {
			return zero, err
		}
		if answer == "" {
			answer = q.Default
		}

		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		q.Err = err.Error()
	}
	return zero, fmt.Errorf("%q: %w after %d attempts: %s", q.Prompt, celestial.ErrInvalidInput, MaxAttempts, q.Err)
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, celestial.Invalid("number", s, "expected a finite number")
	}
	return v, nil
}

// Float asks for a finite number accepted by every check.
func Float(ctx context.Context, p Prompter, q Question, checks ...func(float64) error) (float64, error) {
	return ask(ctx, p, q, func(s string) (float64, error) {
		v, err := parseFloat(s)
		if err != nil {
			return 0, err
		}
		for _, c := range checks {
			if err := c(v); err != nil {
				return 0, err
			}
		}
		return v, nil
	})
}

// Int asks for an integer no smaller than min.
func Int(ctx context.Context, p Prompter, q Question, min int) (int, error) {
	return ask(ctx, p, q, func(s string) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, celestial.Invalid("integer", s, "expected a whole number")
		}
		if v < min {
			return 0, celestial.Invalid("integer", v, fmt.Sprintf("must be >= %d", min))
		}
		return v, nil
	})
}

// Choice asks until parse accepts the answer.
func Choice[T any](ctx context.Context, p Prompter, q Question, parse func(string) (T, error)) (T, error) {
	return ask(ctx, p, q, parse)
}

// YesNo treats an empty answer as yes.
func YesNo(ctx context.Context, p Prompter, q Question) (bool, error) {
	q.Default = ""
	return ask(ctx, p, q, func(s string) (bool, error) {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			return false, celestial.Invalid("answer", s, "expected y or n")
		}
	})
}

func nonNegative(field string) func(float64) error {
	return func(v float64) error {
		if v < 0 {
			return celestial.Invalid(field, v, "must be >= 0")
		}
		return nil
	}
}

func positive(field string) func(float64) error {
	return func(v float64) error {
		if v <= 0 {
			return celestial.Invalid(field, v, "must be > 0")
		}
		return nil
	}
}
