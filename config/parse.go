package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vidharvest/vidharvest/icon"
	"github.com/vidharvest/vidharvest/key"
	"golang.org/x/exp/slices"
)

// ErrUnknownKey is returned for keys that are not registered in Default.
var ErrUnknownKey = errors.New("unknown key")

var validators = map[string]func(value any) error{
	key.InputPath:        nonEmpty,
	key.OutputCSV:        nonEmpty,
	key.OutputJSON:       nonEmpty,
	key.OutputPreview:    atLeast(0),
	key.ExtractMarker:    nonEmpty,
	key.ExtractRenderers: nonEmptyList,
	key.ExtractSelectors: selectors,
	key.ExtractTextLimit: atLeast(1),
	key.ExtractMaxDepth:  atLeast(1),
	key.IconsVariant:     oneOf(icon.AvailableVariants()...),
	key.LogsLevel:        logLevel,
}

// Parse converts command-line values to the type of the key's default and validates
// the result. List keys take every value; other keys take the first.
func Parse(name string, raw []string) (any, error) {
	field, ok := Default[name]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownKey, name)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: value is required", name)
	}

	var value any
	switch field.Value.(type) {
	case string:
		value = raw[0]
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer value: %s", name, raw[0])
		}
		value = n
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean value: %s", name, raw[0])
		}
		value = b
	case []string:
		value = lo.Map(raw, func(s string, _ int) string { return strings.TrimSpace(s) })
	default:
		return nil, fmt.Errorf("%s: unsupported type %T", name, field.Value)
	}

	if err := Validate(name, value); err != nil {
		return nil, err
	}
	return value, nil
}

// Validate checks value against the constraints of key name.
// Keys without constraints accept any value of the right type.
func Validate(name string, value any) error {
	validate, ok := validators[name]
	if !ok {
		return nil
	}
	if err := validate(value); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func nonEmpty(value any) error {
	if s, _ := value.(string); strings.TrimSpace(s) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

func nonEmptyList(value any) error {
	list, _ := value.([]string)
	if len(list) == 0 {
		return errors.New("must list at least one entry")
	}
	if lo.Contains(list, "") {
		return errors.New("entries must not be empty")
	}
	return nil
}

func selectors(value any) error {
	if err := nonEmptyList(value); err != nil {
		return err
	}
	for _, selector := range value.([]string) {
		if _, err := cascadia.Compile(selector); err != nil {
			return fmt.Errorf("invalid selector %q: %w", selector, err)
		}
	}
	return nil
}

func atLeast(floor int) func(any) error {
	return func(value any) error {
		if n, _ := value.(int); n < floor {
			return fmt.Errorf("must be at least %d", floor)
		}
		return nil
	}
}

func oneOf(allowed ...string) func(any) error {
	return func(value any) error {
		if s, _ := value.(string); !lo.Contains(allowed, s) {
			return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
		}
		return nil
	}
}

func logLevel(value any) error {
	s, _ := value.(string)
	_, err := logrus.ParseLevel(s)
	return err
}

// Current returns the effective value of key name, typed like its default.
func Current(name string) any {
	switch Default[name].Value.(type) {
	case string:
		return viper.GetString(name)
	case int:
		return viper.GetInt(name)
	case bool:
		return viper.GetBool(name)
	case []string:
		return StringSlice(name)
	default:
		return viper.Get(name)
	}
}

// Check validates the effective value of every registered key, in key order.
func Check() error {
	names := lo.Keys(Default)
	slices.Sort(names)

	return errors.Join(lo.FilterMap(names, func(name string, _ int) (error, bool) {
		err := Validate(name, Current(name))
		return err, err != nil
	})...)
}
