package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
)

// renderStruct draws an editable view of the struct target points to.
// Numbers and bools are editable, everything else is shown read-only.
func renderStruct(id string, target any) {
	val := reflect.Indirect(reflect.ValueOf(target))
	if !val.IsValid() {
		imgui.Text("nil")
		return
	}

	for _, field := range Fields(target) {
		renderField(id, target, field, val.Field(field.Index))
	}
}

func renderField(id string, target any, field FieldInfo, val reflect.Value) {
	label := fmt.Sprintf("##%s.%s", id, field.Name)

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(field.Name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			SetNumber(target, field.Name, float64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		imgui.Text(fmt.Sprintf("%s: %v", field.Name, val.Interface()))

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(field.Name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) {
			SetNumber(target, field.Name, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(field.Name+label, &v) {
			SetBool(target, field.Name, v)
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", field.Name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", field.Name, val.Interface()))
	}
}
