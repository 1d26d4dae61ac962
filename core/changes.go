package core

import (
	"reflect"
	"strings"
)

// Change is one field that Adjust corrected.
type Change struct {
	Field string `json:"field"`
	From  any    `json:"from"`
	To    any    `json:"to"`
}

// Changes lists the fields that differ between before and after, named by
// their JSON keys in declaration order. Callers use it to tell the user
// their settings were modified by policy.
func Changes[S any](before, after S) []Change {
	b := reflect.ValueOf(before)
	a := reflect.ValueOf(after)
	if b.Kind() != reflect.Struct {
		return nil
	}

	var changes []Change
	fields := b.Type()
	for i := 0; i < fields.NumField(); i++ {
		field := fields.Field(i)
		if !field.IsExported() {
			continue
		}
		from, to := b.Field(i).Interface(), a.Field(i).Interface()
		if reflect.DeepEqual(from, to) {
			continue
		}
		changes = append(changes, Change{Field: jsonName(field), From: from, To: to})
	}
	return changes
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
