package rosmsg

import (
	"strings"

	"github.com/wkalt/rosgen/schema"
)

/*
Merged definitions. Merge renders a schema followed by every type it
transitively depends on, with each dependency introduced by the delimiter
line and a MSG: header naming it. Dependencies appear in first-discovery
order with duplicates dropped. An error building or rendering any block
aborts the whole merge; no partial output is returned.
*/

////////////////////////////////////////////////////////////////////////////////

// Merge renders the schema's definition concatenated with the definitions of
// all its dependencies.
func Merge(sc *schema.Schema, dialect Dialect, catalog Catalog) (string, error) {
	deps, err := Dependencies(sc, catalog)
	if err != nil {
		return "", err
	}
	root, err := Build(sc, dialect)
	if err != nil {
		return "", err
	}
	text, err := Render(root, dialect)
	if err != nil {
		return "", err
	}
	blocks := []string{text}
	seen := map[string]bool{}
	for _, dep := range deps {
		if seen[dep.key()] {
			continue
		}
		seen[dep.key()] = true
		var def *Definition
		switch dep.Kind {
		case RosDependency:
			entry, ok := catalog.Lookup(dep.Name)
			if !ok {
				return "", UnknownTypeError{name: dep.Name}
			}
			def = catalogDefinition(dep.Name, entry)
		case FoxgloveDependency:
			if def, err = Build(dep.Schema, dialect); err != nil {
				return "", err
			}
		}
		text, err := Render(def, dialect)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, "MSG: "+dep.QualifiedName()+"\n"+text)
	}
	return strings.Join(blocks, Delimiter+"\n"), nil
}

// catalogDefinition lifts a catalog entry into a definition verbatim. Catalog
// entries are already in final msg form.
func catalogDefinition(name string, entry CatalogDefinition) *Definition {
	def := &Definition{
		OriginalName:      name,
		MsgInterfaceName:  name,
		FullInterfaceName: name,
	}
	for _, field := range entry.Fields {
		def.Fields = append(def.Fields, Field{
			Type:        field.Type,
			Name:        field.Name,
			Array:       field.Array,
			FixedLength: field.FixedLength,
		})
	}
	return def
}
