package env

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// ParseReflect parses the textual form of a value of the given type.
// Lists are comma separated.
func ParseReflect(typ reflect.Type, raw string) (reflect.Value, error) {
	return parse(typ, raw, ",")
}

func parse(typ reflect.Type, raw string, sep string) (reflect.Value, error) {
	ptr := reflect.New(typ)
	out := ptr.Elem()
	if typ == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return reflect.Value{}, ErrInvalidValue.Wrap(err)
		}
		out.SetInt(int64(d))
		return out, nil
	}
	switch typ.Kind() {
	case reflect.String:
		out.SetString(raw)
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return reflect.Value{}, ErrInvalidValue.Wrap(err)
		}
		out.SetBool(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(raw, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, ErrInvalidValue.Wrap(err)
		}
		out.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(raw, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, ErrInvalidValue.Wrap(err)
		}
		out.SetUint(v)
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(raw, typ.Bits())
		if err != nil {
			return reflect.Value{}, ErrInvalidValue.Wrap(err)
		}
		out.SetFloat(v)
	case reflect.Slice:
		list := reflect.MakeSlice(typ, 0, 0)
		if raw == "" {
			return list, nil
		}
		for _, part := range strings.Split(raw, sep) {
			v, err := parse(typ.Elem(), strings.TrimSpace(part), sep)
			if err != nil {
				return reflect.Value{}, err
			}
			list = reflect.Append(list, v)
		}
		return list, nil
	default:
		return reflect.Value{}, ErrInvalidValue.F("unsupported type: %s", typ.String())
	}
	return out, nil
}
