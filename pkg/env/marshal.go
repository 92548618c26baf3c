package env

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ToMap reflects over the struct pointed to by c and returns its non-zero
// fields keyed by the name in their env tag.
func ToMap(c any) (map[string]string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("env: expected pointer to struct, got %T", c)
	}
	v = v.Elem()
	t := v.Type()

	res := make(map[string]string)
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("env")

		// Skip fields without env tag or unexported fields
		if tag == "" || !field.IsExported() {
			continue
		}

		// Tag looks like "KEY,required,notEmpty" or "KEY"
		key := strings.Split(tag, ",")[0]
		if key == "" {
			continue
		}

		val := v.Field(i)
		if isZeroValue(val) {
			continue
		}
		res[key] = formatValue(val)
	}
	return res, nil
}

// MarshalEnv renders c as .env content, one sorted KEY=value line per field.
func MarshalEnv(c any) (string, error) {
	m, err := ToMap(c)
	if err != nil {
		return "", err
	}
	out, err := godotenv.Marshal(m)
	if err != nil {
		return "", err
	}
	if out != "" {
		out += "\n"
	}
	return out, nil
}

// WriteFile writes c as a .env file at path, creating parent directories.
func WriteFile(path string, c any) error {
	m, err := ToMap(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return godotenv.Write(m, path)
}

// isZeroValue checks if a reflect.Value is the zero value for its type
func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// formatValue converts a reflect.Value to its string representation
func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
