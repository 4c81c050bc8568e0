package models

// InputType describes how a field is collected.
type InputType string

const (
	InputNumber InputType = "number"
	InputSelect InputType = "select"
)

// Option is one allowed answer of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one collected answer of form F. Generic code reaches form
// values only through Get and Set.
type Field[F any] struct {
	Key         string    `json:"key"`
	Name        string    `json:"-"` // struct field name, used for partial validation
	Label       string    `json:"label"`
	Input       InputType `json:"input"`
	Placeholder string    `json:"placeholder,omitempty"`
	Min         string    `json:"min,omitempty"`
	Max         string    `json:"max,omitempty"`
	Step        string    `json:"step,omitempty"`
	Options     []Option  `json:"options,omitempty"`

	Get func(*F) string  `json:"-"`
	Set func(*F, string) `json:"-"`
}

// FieldByKey finds a descriptor by its JSON key.
func FieldByKey[F any](fields []Field[F], key string) (Field[F], bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field[F]{}, false
}

// Values snapshots the form into a key/value map, in descriptor order.
func Values[F any](form *F, fields []Field[F]) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Get(form)
	}
	return out
}

func optionsOf(values ...string) []Option {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Value: v, Label: v}
	}
	return opts
}

var yesNoOptions = []Option{
	{Value: "yes", Label: "Yes"},
	{Value: "no", Label: "No"},
}
