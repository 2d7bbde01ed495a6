package validator

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// PropertySource exposes named properties to ObjectValidator without
// reflection. Types implementing it take precedence over struct and map
// enumeration.
type PropertySource interface {
	// PropertyNames lists the available properties in a stable order.
	PropertyNames() []string
	// PropertyValue returns the value of the named property.
	PropertyValue(name string) (any, bool)
}

// ObjectValidator checks named properties of structs, string-keyed maps and
// PropertySource values.
//
// Nested values are validated recursively; self-referential values recurse
// without bound.
type ObjectValidator struct {
	base
	names           []string
	properties      map[string]Validator[any]
	omittable       map[string]bool
	allowAdditional bool
}

// Object returns an ObjectValidator. Entries of the given maps are registered
// in sorted key order.
func Object(properties ...map[string]Validator[any]) *ObjectValidator {
	o := &ObjectValidator{
		properties:      make(map[string]Validator[any]),
		omittable:       make(map[string]bool),
		allowAdditional: true,
	}
	for _, props := range properties {
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			o.Property(k, props[k])
		}
	}
	return o
}

// Property registers v for the named property. Registering the same name
// again replaces the validator and keeps its original position.
func (o *ObjectValidator) Property(name string, v Validator[any]) *ObjectValidator {
	if v == nil {
		panic(ErrNilValidator)
	}
	if _, exists := o.properties[name]; !exists {
		o.names = append(o.names, name)
	}
	o.properties[name] = v
	delete(o.omittable, name)
	return o
}

// OptionalProperty registers a property that may be missing entirely, as
// keys of decoded documents often are. A present value must satisfy v, and
// a null value is accepted.
func (o *ObjectValidator) OptionalProperty(name string, v Validator[any]) *ObjectValidator {
	if v == nil {
		panic(ErrNilValidator)
	}
	o.Property(name, v.Optional())
	o.omittable[name] = true
	return o
}

// AllowAdditionalProperties controls whether properties without a registered
// validator are tolerated. They are by default.
func (o *ObjectValidator) AllowAdditionalProperties(allow bool) *ObjectValidator {
	o.allowAdditional = allow
	return o
}

func (o *ObjectValidator) Validate(value any) Result {
	v, ok := indirect(value)
	if !ok {
		return o.failure("Object cannot be null")
	}

	src := propertiesOf(value, v)
	available := src.PropertyNames()
	folded := make([]string, len(available))
	for i, name := range available {
		folded[i] = foldName(name)
	}

	var errs []string
	validated := make(map[string]bool, len(o.names))

	for _, name := range o.names {
		actual, found := lookupProperty(src, available, folded, name)
		if !found {
			if o.omittable[name] {
				continue
			}
			errs = append(errs, fmt.Sprintf("Property '%s' not found on object", name))
			continue
		}

		validated[actual] = true
		propValue, _ := src.PropertyValue(actual)

		res := o.properties[name].Validate(propValue)
		if !res.IsValid() {
			errs = append(errs, res.Prefixed(fmt.Sprintf("Property '%s': ", name)).errors...)
		}
	}

	if !o.allowAdditional {
		var extra []string
		for _, name := range available {
			if !validated[name] {
				extra = append(extra, name)
			}
		}
		if len(extra) > 0 {
			errs = append(errs, "Additional properties not allowed: "+strings.Join(extra, ", "))
		}
	}

	if len(errs) == 0 {
		return Success()
	}
	return Failure(errs...)
}

func (o *ObjectValidator) Optional() Validator[any] {
	return Optional[any](o)
}

func (o *ObjectValidator) WithMessage(message string) Validator[any] {
	o.setMessage(message)
	return o
}

func foldName(name string) string {
	return cases.Fold().String(name)
}

// lookupProperty resolves a configured name to the source's own property name
// by case-insensitive comparison, falling back to struct tag aliases.
func lookupProperty(src PropertySource, available, folded []string, name string) (string, bool) {
	key := foldName(name)
	if idx := slices.Index(folded, key); idx >= 0 {
		return available[idx], true
	}
	if s, ok := src.(structSource); ok {
		actual, ok := s.aliases[key]
		return actual, ok
	}
	return "", false
}

// propertiesOf picks the property source for the original value or its
// dereferenced form v.
func propertiesOf(value, v any) PropertySource {
	if src, ok := value.(PropertySource); ok {
		return src
	}
	if src, ok := v.(PropertySource); ok {
		return src
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		return newMapSource(rv)
	case rv.Kind() == reflect.Struct:
		return newStructSource(rv)
	}
	return emptySource{}
}

type emptySource struct{}

func (emptySource) PropertyNames() []string {
	return nil
}

func (emptySource) PropertyValue(string) (any, bool) {
	return nil, false
}

type mapSource struct {
	rv   reflect.Value
	keys []string
}

func newMapSource(rv reflect.Value) mapSource {
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	return mapSource{rv: rv, keys: keys}
}

func (m mapSource) PropertyNames() []string {
	return m.keys
}

func (m mapSource) PropertyValue(name string) (any, bool) {
	key := reflect.ValueOf(name).Convert(m.rv.Type().Key())
	val := m.rv.MapIndex(key)
	if !val.IsValid() {
		return nil, false
	}
	return val.Interface(), true
}

// structSource exposes exported fields, including fields promoted from
// embedded structs. A field answers to its Go name and to its json tag name.
type structSource struct {
	rv      reflect.Value
	names   []string
	fields  map[string][]int
	aliases map[string]string
}

func newStructSource(rv reflect.Value) structSource {
	t := rv.Type()
	src := structSource{
		rv:      rv,
		fields:  make(map[string][]int),
		aliases: make(map[string]string),
	}
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		// Skip fields shadowed by a shallower one or ambiguous at the same depth.
		if sf, ok := t.FieldByName(f.Name); !ok || !slices.Equal(sf.Index, f.Index) {
			continue
		}
		src.names = append(src.names, f.Name)
		src.fields[f.Name] = f.Index

		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag != "" && tag != "-" {
			src.aliases[foldName(tag)] = f.Name
		}
	}
	return src
}

func (s structSource) PropertyNames() []string {
	return s.names
}

func (s structSource) PropertyValue(name string) (any, bool) {
	index, ok := s.fields[name]
	if !ok {
		return nil, false
	}
	field, err := s.rv.FieldByIndexErr(index)
	if err != nil {
		// Promoted through a nil embedded pointer.
		return nil, true
	}
	return field.Interface(), true
}
