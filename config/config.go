// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/z5labs/ini/config/key"

	"github.com/go-viper/mapstructure/v2"
)

// Store is where a Source writes its values.
type Store interface {
	Set(key.Keyer, any) error
}

// Source is anything which can write key value pairs into a Store.
type Source interface {
	Apply(Store) error
}

// Manager holds the merged values of one or more Sources.
type Manager struct {
	store Map
}

// Read applies srcs in order to an empty Map. Values from later
// sources replace values from earlier ones.
func Read(srcs ...Source) (*Manager, error) {
	store := make(Map)
	for i, src := range srcs {
		err := src.Apply(store)
		if err != nil {
			return nil, fmt.Errorf("config: source %d: %w", i, err)
		}
	}
	return &Manager{store: store}, nil
}

// Apply lets a Manager act as the Source for another Manager.
func (m *Manager) Apply(store Store) error {
	return m.store.Apply(store)
}

// Unmarshal decodes the merged values into v, which must be a non-nil
// pointer. Fields are matched with the "config" struct tag.
//
// INI values are always text so the usual conversions apply: numbers
// and durations are parsed, encoding.TextUnmarshaler is honoured,
// booleans accept 1, true, yes and y in any case, and a string decoded
// into a slice is split on commas with empty items dropped.
func (m *Manager) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		Result:           v,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.DecodeHookFuncType(iniBoolHook),
			mapstructure.DecodeHookFuncType(iniListHook),
		),
	})
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	err = dec.Decode(map[string]any(m.store))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func iniBoolHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	switch strings.ToLower(strings.TrimSpace(data.(string))) {
	case "1", "true", "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}

func iniListHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}

	var items []string
	for _, item := range strings.Split(data.(string), ",") {
		item = strings.TrimSpace(item)
		if len(item) > 0 {
			items = append(items, item)
		}
	}
	return items, nil
}
