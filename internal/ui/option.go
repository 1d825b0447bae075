package ui

import "multiselect/internal/config"

// Option is the item type rendered by the terminal combobox. Options are
// handled by pointer, so two options with the same label stay distinct.
type Option struct {
	Label string
	Value string
}

// OptionLabel is the label function handed to the combobox catalog.
func OptionLabel(o *Option) string { return o.Label }

// NewOptions builds one option per label, using the label as value.
func NewOptions(labels ...string) []*Option {
	out := make([]*Option, 0, len(labels))
	for _, l := range labels {
		out = append(out, &Option{Label: l, Value: l})
	}
	return out
}

// OptionsFromConfig converts configured options and resolves the
// pre-selected keys against them. The config is expected to be validated.
func OptionsFromConfig(cfg config.Config) (options, selected []*Option) {
	byKey := make(map[string]*Option, len(cfg.Options))
	for _, o := range cfg.Options {
		opt := &Option{Label: o.Label, Value: o.Key()}
		byKey[opt.Value] = opt
		options = append(options, opt)
	}
	for _, k := range cfg.Selected {
		if opt, ok := byKey[k]; ok {
			selected = append(selected, opt)
		}
	}
	return options, selected
}

// ConfigOptions converts options back into config form, returning the
// selected option keys alongside.
func ConfigOptions(options, selected []*Option) ([]config.Option, []string) {
	out := make([]config.Option, 0, len(options))
	for _, o := range options {
		out = append(out, config.Option{Label: o.Label, Value: o.Value})
	}
	keys := make([]string, 0, len(selected))
	for _, o := range selected {
		keys = append(keys, o.Value)
	}
	return out, keys
}
