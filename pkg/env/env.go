// Package env loads configuration from environment variables into typed values.
package env

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"go.llib.dev/lazytake/pkg/errorkit"
)

const (
	ErrLoadInvalidData errorkit.Error = "ErrLoadInvalidData"
	ErrInvalidValue    errorkit.Error = "ErrInvalidValue"
)

// Lookup reads an environment variable and parses it into T.
// The second return value tells whether the variable or a default value was present.
func Lookup[T any](key string, opts ...LookupOption) (T, bool, error) {
	var conf lookupEnvOptions
	for _, opt := range opts {
		opt.configure(&conf)
	}
	typ := reflect.TypeOf((*T)(nil)).Elem()
	val, ok, err := lookupEnv(typ, key, conf)
	if err != nil || !ok {
		return *new(T), ok, err
	}
	return val.Interface().(T), true, nil
}

type LookupOption interface{ configure(*lookupEnvOptions) }

type funcLookupOption func(*lookupEnvOptions)

func (fn funcLookupOption) configure(options *lookupEnvOptions) { fn(options) }

func ListSeparator[SEP rune | string](sep SEP) LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		s := string(sep)
		options.Separator = &s
	})
}

func DefaultValue(val string) LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.DefaultValue = &val
	})
}

func Required() LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.IsRequired = true
	})
}

// Load populates the env tagged fields of a struct.
//
//	type Config struct {
//		Level string `env:"LOG_LEVEL" default:"info" enum:"debug;info;warn;error;"`
//		N     int    `env:"N" required:"true"`
//	}
func Load[T any](ptr *T) error {
	if ptr == nil {
		return ErrLoadInvalidData.F("nil value received")
	}
	return ReflectLoad(reflect.ValueOf(ptr))
}

// ReflectLoad is the reflection variant of Load.
// ptr must be a pointer to a struct.
func ReflectLoad(ptr reflect.Value) error {
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		return ErrLoadInvalidData.F("non-pointer value received")
	}
	rv := ptr.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrLoadInvalidData.F("non-struct type received")
	}
	return loadVisitStruct(rv)
}

func loadVisitStruct(rStruct reflect.Value) error {
	for i, numField := 0, rStruct.NumField(); i < numField; i++ {
		rStructField := rStruct.Type().Field(i)
		if !rStructField.IsExported() {
			continue
		}

		field := rStruct.Field(i)

		osEnvKey, ok := rStructField.Tag.Lookup(envTagKey)
		if !ok {
			if field.Kind() == reflect.Struct {
				if err := loadVisitStruct(field); err != nil {
					return err
				}
			}
			continue
		}

		opts, err := getLookupEnvOptions(rStructField.Tag)
		if err != nil {
			return err
		}

		val, ok, err := lookupEnvKeys(field.Type(), osEnvKey, opts)
		if err != nil {
			return errParsingEnvValue(rStructField, err)
		}
		if !ok {
			continue
		}
		if enum, ok := rStructField.Tag.Lookup(enumTagKey); ok {
			if err := validateEnum(val, enum); err != nil {
				return errParsingEnvValue(rStructField, err)
			}
		}
		field.Set(val)
	}
	return nil
}

const (
	envTagKey  = "env"
	enumTagKey = "enum"
)

var (
	tagsForDefaultValue = []string{"env-default", "default"}
	tagsForRequired     = []string{"env-required", "env-require", "required", "require"}
	tagsForSeparator    = []string{"env-separator", "separator"}
)

func getLookupEnvOptions(tag reflect.StructTag) (lookupEnvOptions, error) {
	var opts lookupEnvOptions
	for _, key := range tagsForDefaultValue {
		value, ok := tag.Lookup(key)
		if ok {
			opts.DefaultValue = &value
			break
		}
	}
	for _, key := range tagsForRequired {
		value, ok := tag.Lookup(key)
		if !ok {
			continue
		}
		isRequired, err := strconv.ParseBool(value)
		if err != nil {
			return opts, err
		}
		opts.IsRequired = isRequired
		break
	}
	for _, key := range tagsForSeparator {
		value, ok := tag.Lookup(key)
		if ok {
			opts.Separator = &value
			break
		}
	}
	return opts, nil
}

type lookupEnvOptions struct {
	DefaultValue *string
	Separator    *string
	IsRequired   bool
}

// Present reports whether any of the comma separated keys of an env tag is set in the environment,
// even when it is set to an empty or zero value.
func Present(keys string) bool {
	for _, key := range splitKeys(keys) {
		if _, ok := os.LookupEnv(key); ok {
			return true
		}
	}
	return false
}

func splitKeys(keys string) []string {
	var names []string
	for _, key := range strings.Split(keys, ",") {
		if key = strings.TrimSpace(key); key != "" {
			names = append(names, key)
		}
	}
	return names
}

// lookupEnvKeys tries the comma separated keys of an env tag in order.
func lookupEnvKeys(typ reflect.Type, keys string, opts lookupEnvOptions) (reflect.Value, bool, error) {
	names := splitKeys(keys)
	for _, key := range names {
		if _, ok := os.LookupEnv(key); ok {
			return lookupEnv(typ, key, opts)
		}
	}
	if len(names) == 0 {
		return reflect.Value{}, false, nil
	}
	return lookupEnv(typ, names[0], opts)
}

func lookupEnv(typ reflect.Type, key string, opts lookupEnvOptions) (reflect.Value, bool, error) {
	val, ok := os.LookupEnv(key)
	if !ok && opts.DefaultValue != nil {
		ok = true
		val = *opts.DefaultValue
	}
	if !ok {
		var err error
		if opts.IsRequired {
			err = errMissingEnvironmentVariable(key)
		}
		return reflect.Value{}, false, err
	}
	sep := ","
	if opts.Separator != nil {
		sep = *opts.Separator
	}
	rv, err := parse(typ, val, sep)
	if err != nil {
		return reflect.Value{}, false, err
	}
	return rv, true, nil
}

func validateEnum(val reflect.Value, enum string) error {
	got := fmt.Sprint(val.Interface())
	for _, opt := range strings.Split(enum, ";") {
		if opt != "" && opt == got {
			return nil
		}
	}
	return ErrInvalidValue.F("%q is not one of %q", got, enum)
}

func errMissingEnvironmentVariable(key string) error {
	return fmt.Errorf("missing environment variable: %s", key)
}

func errParsingEnvValue(structField reflect.StructField, err error) error {
	return fmt.Errorf("error parsing the value for %s: %w", structField.Name, err)
}

type Set struct {
	lookups []func() error
}

// SetLookup function registers a Lookup within a specified Set.
// When 'Set.Parse' is invoked, all the registered lookups will be executed.
// Unlike the 'Lookup' function, 'SetLookup' doesn't permit missing environment variables without a fallback value
// and will raise it as an issue.
func SetLookup[T any](set *Set, ptr *T, key string, opts ...LookupOption) {
	if set == nil {
		panic("SetLookup requires a non nil Set pointer")
	}
	if ptr == nil {
		panic(fmt.Sprintf("SetLookup requires a non nil %T pointer", ptr))
	}
	var lookup = func() error {
		value, ok, err := Lookup[T](key, opts...)
		if err != nil {
			return err
		}
		if !ok {
			return errMissingEnvironmentVariable(key)
		}
		*ptr = value
		return nil
	}
	set.lookups = append(set.lookups, lookup)
}

func (es Set) Parse() error {
	var errs []error
	for _, lookup := range es.lookups {
		errs = append(errs, lookup())
	}
	return errorkit.Merge(errs...)
}
