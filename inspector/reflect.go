package inspector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Widget selects how a field is drawn.
type Widget int

const (
	WidgetAuto Widget = iota
	WidgetLabel
	WidgetBar
	WidgetBool
	WidgetSkip
)

var widgetNames = map[string]Widget{
	"label": WidgetLabel,
	"bar":   WidgetBar,
	"bool":  WidgetBool,
	"skip":  WidgetSkip,
}

// Field is one exported component field with its drawing hints.
type Field struct {
	Name    string
	Value   any
	Widget  Widget
	Options map[string]string
}

// ParseTag reads an `inspect:"widget[,key:value...]"` tag, for example
// `inspect:"bar,max:200"` or `inspect:"skip"`. Unknown widgets fall back to
// WidgetAuto.
func ParseTag(tag string) (Widget, map[string]string) {
	options := make(map[string]string)
	name, rest, _ := strings.Cut(tag, ",")

	widget := widgetNames[strings.TrimSpace(name)]
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		if k, v, ok := strings.Cut(strings.TrimSpace(opt), ":"); ok {
			options[k] = v
		}
	}
	return widget, options
}

// ExtractFields lists the exported fields of a struct (or pointer to one),
// leaving out those tagged skip.
func ExtractFields(component any) []Field {
	v := reflect.Indirect(reflect.ValueOf(component))
	if v.Kind() != reflect.Struct {
		return nil
	}

	var fields []Field
	for _, sf := range reflect.VisibleFields(v.Type()) {
		if !sf.IsExported() || len(sf.Index) > 1 {
			continue
		}
		widget, options := ParseTag(sf.Tag.Get("inspect"))
		if widget == WidgetSkip {
			continue
		}
		fv := v.FieldByIndex(sf.Index)
		if widget == WidgetAuto {
			widget = WidgetLabel
			if fv.Kind() == reflect.Bool {
				widget = WidgetBool
			}
		}
		fields = append(fields, Field{Name: sf.Name, Value: fv.Interface(), Widget: widget, Options: options})
	}
	return fields
}

// FormatValue renders value with fmtStr, or with %v (floats to two decimals)
// when fmtStr is empty.
func FormatValue(value any, fmtStr string) string {
	if fmtStr != "" {
		return fmt.Sprintf(fmtStr, value)
	}
	if f, ok := value.(float64); ok {
		return strconv.FormatFloat(f, 'f', 2, 64)
	}
	if f, ok := value.(float32); ok {
		return strconv.FormatFloat(float64(f), 'f', 2, 32)
	}
	return fmt.Sprint(value)
}

// GetMax returns the positive max option, or 1.
func GetMax(options map[string]string) float32 {
	m, err := strconv.ParseFloat(options["max"], 32)
	if err != nil || m <= 0 {
		return 1
	}
	return float32(m)
}

// GetFloatValue converts any integer or float value to float32.
func GetFloatValue(value any) (float32, bool) {
	v := reflect.ValueOf(value)
	switch {
	case v.CanInt():
		return float32(v.Int()), true
	case v.CanUint():
		return float32(v.Uint()), true
	case v.CanFloat():
		return float32(v.Float()), true
	}
	return 0, false
}
