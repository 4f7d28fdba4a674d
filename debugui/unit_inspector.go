package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/scenekit/scene"
)

// UnitInspector edits the exported fields of the selected entity's units.
type UnitInspector struct {
	selected scene.EntityID
}

func NewUnitInspector() *UnitInspector {
	return &UnitInspector{}
}

func (ui *UnitInspector) Render(s *scene.Scene, selected scene.EntityID) {
	if !imgui.BeginV("Unit Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ui.selected = selected
	if selected == 0 {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	e := s.EntityByID(selected)
	if e == nil {
		imgui.Text(fmt.Sprintf("Entity %d is no longer in the scene", selected))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", e.ID()))
	tag := e.Tag()
	imgui.Text("Tag:")
	imgui.SameLine()
	imgui.SetNextItemWidth(200)
	if imgui.InputTextWithHint("##tag", "", &tag, imgui.InputTextFlagsNone, nil) {
		e.SetTag(tag)
	}
	imgui.Separator()

	for i, u := range e.Units() {
		if imgui.TreeNodeStr(fmt.Sprintf("%s##%d", unitTypeName(u), i)) {
			ui.renderUnit(u, i)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ui *UnitInspector) renderUnit(u scene.Unit, idx int) {
	imgui.Text(fmt.Sprintf("State: %s", u.State()))
	enabled := u.Enabled()
	if imgui.Checkbox(fmt.Sprintf("Enabled##%d", idx), &enabled) {
		u.SetEnabled(enabled)
	}

	if t, ok := u.(scene.Spatial); ok {
		renderSpatial(t, idx)
	}

	val, fields, ok := globalReflectionCache.UnitFields(u)
	if !ok {
		return
	}
	for _, field := range fields {
		fieldVal := val.Field(field.Index)
		if field.IsPointer && field.Kind != FieldReference && !fieldVal.IsNil() {
			fieldVal = fieldVal.Elem()
		}
		renderField(fmt.Sprintf("%s##%d", field.Name, idx), fieldVal, field)
	}
}

func renderSpatial(t scene.Spatial, idx int) {
	vec3 := func(label string, get func() mgl32.Vec3, set func(mgl32.Vec3)) {
		v := [3]float32(get())
		if imgui.InputFloat3(fmt.Sprintf("%s##%d", label, idx), &v) {
			set(mgl32.Vec3(v))
		}
	}
	vec3("Position", t.Position, t.SetPosition3)
	vec3("Rotation", t.Rotation, t.SetRotation3)
	vec3("Scale", t.Scale, t.SetScale3)
	vec3("Size", t.Size, t.SetSize3)
	vec3("Origin", t.Origin, t.SetOrigin3)
}

var vec3Type = reflect.TypeFor[[3]float32]()

func renderField(label string, val reflect.Value, field FieldInfo) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", label))
		return
	}

	if field.IsPointer && val.Kind() == reflect.Pointer && val.IsNil() {
		imgui.Text(fmt.Sprintf("%s: nil", label))
		return
	}

	switch field.Kind {
	case FieldReference:
		imgui.Text(fmt.Sprintf("%s: %s", label, describe(val)))
		return
	case FieldCollection:
		imgui.Text(fmt.Sprintf("%s: [%d items]", label, val.Len()))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			setField(val, int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) && v >= 0 {
			setField(val, uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) {
			setField(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(label, &v) {
			setField(val, v)
		}

	case reflect.String:
		v := val.String()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) {
			setField(val, v)
		}

	case reflect.Array:
		if val.Type().ConvertibleTo(vec3Type) {
			v := val.Convert(vec3Type).Interface().([3]float32)
			if imgui.InputFloat3(label, &v) {
				setField(val, v)
			}
			return
		}
		imgui.Text(fmt.Sprintf("%s: [%d]", label, val.Len()))

	case reflect.Struct:
		if imgui.TreeNodeStr(label) {
			for _, nf := range globalReflectionCache.Fields(val.Type()) {
				nestedVal := val.Field(nf.Index)
				if nf.IsPointer && nf.Kind != FieldReference && !nestedVal.IsNil() {
					nestedVal = nestedVal.Elem()
				}
				renderField(nf.Name+"##"+label, nestedVal, nf)
			}
			imgui.TreePop()
		}

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", label, val.Interface()))
		}
	}
}

// describe names the scene object a reference field points at.
func describe(val reflect.Value) string {
	if !val.IsValid() || (val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface) && val.IsNil() {
		return "nil"
	}
	if !val.CanInterface() {
		return val.Type().String()
	}
	switch v := val.Interface().(type) {
	case *scene.Entity:
		return fmt.Sprintf("entity %d (%s)", v.ID(), v.Tag())
	case *scene.Scene:
		return fmt.Sprintf("scene %q", v.Name())
	case *scene.Layer:
		return fmt.Sprintf("layer %q", v.Name())
	case scene.Unit:
		return unitTypeName(v)
	default:
		return fmt.Sprintf("%T", v)
	}
}

// setField assigns v to field when it is settable and v converts to the
// field's type. It reports whether the field changed.
func setField(field reflect.Value, v any) bool {
	if !field.CanSet() {
		return false
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().ConvertibleTo(field.Type()) {
		return false
	}

	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Convert(reflect.TypeFor[int64]()).Int()
		if field.OverflowInt(n) {
			return false
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Convert(reflect.TypeFor[uint64]()).Uint()
		if field.OverflowUint(n) {
			return false
		}
		field.SetUint(n)
	default:
		field.Set(rv.Convert(field.Type()))
	}
	return true
}
