package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported field the inspector can show.
type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
}

// fieldCache memoises the exported fields of struct types.
type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

func newFieldCache() *fieldCache {
	return &fieldCache{fields: make(map[reflect.Type][]FieldInfo)}
}

func (c *fieldCache) get(t reflect.Type) []FieldInfo {
	c.mu.RLock()
	cached, ok := c.fields[t]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.fields[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
			})
		}
	}

	c.fields[t] = fields
	return fields
}

var globalFieldCache = newFieldCache()

// Fields lists the exported fields of the struct v points to. Non-struct
// values have no fields.
func Fields(v any) []FieldInfo {
	val := reflect.Indirect(reflect.ValueOf(v))
	if !val.IsValid() {
		return nil
	}
	return globalFieldCache.get(val.Type())
}

// SetNumber writes n into the named numeric field of the struct target
// points to, converting to the field's kind. It reports false when the
// field does not exist, is not numeric or cannot be set.
func SetNumber(target any, name string, n float64) bool {
	field, ok := settableField(target, name)
	if !ok {
		return false
	}
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		field.SetInt(int64(n))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n < 0 {
			return false
		}
		field.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		field.SetFloat(n)
	default:
		return false
	}
	return true
}

// SetBool writes b into the named bool field of the struct target points to.
func SetBool(target any, name string, b bool) bool {
	field, ok := settableField(target, name)
	if !ok || field.Kind() != reflect.Bool {
		return false
	}
	field.SetBool(b)
	return true
}

func settableField(target any, name string) (reflect.Value, bool) {
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return reflect.Value{}, false
	}
	val = val.Elem()
	for _, f := range globalFieldCache.get(val.Type()) {
		if f.Name == name {
			field := val.Field(f.Index)
			return field, field.CanSet()
		}
	}
	return reflect.Value{}, false
}
