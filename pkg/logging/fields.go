package logging

type entry map[string]any

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(l *Logger, e entry)
}

// Field creates a single key value pair based logging detail.
// It will enrich the log entry with a value in the key you gave.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l *Logger, e entry) {
	if d, ok := f.Value.(Detail); ok {
		sub := make(entry)
		d.addTo(l, sub)
		e[l.key(f.Key)] = sub
		return
	}
	e[l.key(f.Key)] = f.Value
}

// Fields is a collection of field that you can add to your loggig record.
// It will enrich the log entry with a value in the key you gave.
type Fields map[string]any

func (fields Fields) addTo(l *Logger, e entry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

// ErrField adds the error's message under the "error" key.
// A nil error adds nothing.
func ErrField(err error) Detail {
	if err == nil {
		return nullDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

type nullDetail struct{}

func (nullDetail) addTo(*Logger, entry) {}
