package debugui

import (
	"reflect"
	"sync"

	"github.com/plus3/scenekit/scene"
)

// FieldKind selects how the unit inspector shows a field.
type FieldKind uint8

const (
	// FieldValue is a scalar or small array edited in place.
	FieldValue FieldKind = iota
	// FieldStruct is expanded as a tree of its own fields.
	FieldStruct
	// FieldReference points at another scene object and is only named, so
	// the inspector never walks the scene graph through a unit.
	FieldReference
	// FieldCollection is a slice or map shown by length.
	FieldCollection
)

// FieldInfo describes an exported field shown by the unit inspector.
type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
	Kind      FieldKind
}

var (
	unitType   = reflect.TypeFor[scene.Unit]()
	entityType = reflect.TypeFor[scene.Entity]()
	sceneType  = reflect.TypeFor[scene.Scene]()
	layerType  = reflect.TypeFor[scene.Layer]()
)

// ReflectionCache memoizes the inspectable fields of unit types and of the
// structs nested in them.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// UnitFields returns the struct behind u and its inspectable fields. ok is
// false when u is not a pointer to a struct.
func (rc *ReflectionCache) UnitFields(u scene.Unit) (val reflect.Value, fields []FieldInfo, ok bool) {
	val = reflect.ValueOf(u)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return reflect.Value{}, nil, false
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return reflect.Value{}, nil, false
	}
	return val, rc.Fields(val.Type()), true
}

// Fields returns the exported fields of struct type t. Embedded fields hold
// unit plumbing such as scene.BaseUnit and are skipped, as are funcs and
// channels.
func (rc *ReflectionCache) Fields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() || field.Anonymous {
				continue
			}
			kind, show := classify(field.Type)
			if !show {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Pointer
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
				Kind:      kind,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

func classify(t reflect.Type) (FieldKind, bool) {
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return 0, false
	case reflect.Interface:
		return FieldReference, true
	case reflect.Slice, reflect.Map:
		return FieldCollection, true
	}
	if t.Implements(unitType) {
		return FieldReference, true
	}
	if t.Kind() == reflect.Pointer {
		switch t.Elem() {
		case entityType, sceneType, layerType:
			return FieldReference, true
		}
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		return FieldStruct, true
	}
	return FieldValue, true
}

var globalReflectionCache = NewReflectionCache()
