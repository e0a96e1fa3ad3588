package rosmsg

import (
	"github.com/wkalt/rosgen/schema"
)

/*
Dependency resolution. Dependencies walks a schema's fields depth-first in
declared order and returns every type the schema requires, transitively.
Fields whose schema declares a ros equivalent contribute the catalog entry
and, recursively, the entries its complex fields name; other nested fields
contribute the foxglove schema and its own dependencies.

The result is not deduplicated. Merge dedupes by identity while preserving
first-occurrence order, which keeps this walk composable and free of
call-spanning state. Termination relies on the catalogs being acyclic.
*/

////////////////////////////////////////////////////////////////////////////////

// Dependencies returns the pre-order list of types the schema requires,
// including transitively. The list may contain duplicates.
func Dependencies(sc *schema.Schema, catalog Catalog) ([]Dependency, error) {
	var out []Dependency
	if err := walkSchema(sc, catalog, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func walkSchema(sc *schema.Schema, catalog Catalog, out *[]Dependency) error {
	for _, field := range sc.Fields {
		if !field.Type.IsNested() {
			continue
		}
		nested := field.Type.Nested
		if nested.RosEquivalent != "" {
			*out = append(*out, Dependency{Kind: RosDependency, Name: nested.RosEquivalent})
			if err := walkRosType(nested.RosEquivalent, catalog, out); err != nil {
				return err
			}
			continue
		}
		*out = append(*out, Dependency{Kind: FoxgloveDependency, Schema: nested})
		if err := walkSchema(nested, catalog, out); err != nil {
			return err
		}
	}
	return nil
}

func walkRosType(name string, catalog Catalog, out *[]Dependency) error {
	def, ok := catalog.Lookup(name)
	if !ok {
		return UnknownTypeError{name: name}
	}
	for _, field := range def.Fields {
		if !field.Complex {
			continue
		}
		*out = append(*out, Dependency{Kind: RosDependency, Name: field.Type})
		if err := walkRosType(field.Type, catalog, out); err != nil {
			return err
		}
	}
	return nil
}
