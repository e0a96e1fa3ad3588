package schema

import (
	"fmt"

	"github.com/goccy/go-json"
)

/*
Catalog loading. A catalog is declared in one or more JSON documents, each
holding a list of enums and a list of schemas. Field types are either a
primitive name or a single-key object referencing a schema or enum by name.
References may point forward, and may cross documents when several are loaded
together, so resolution runs in two passes over the full set.
*/

////////////////////////////////////////////////////////////////////////////////

// Catalog is a read-only table of schemas in declaration order.
type Catalog struct {
	schemas map[string]*Schema
	names   []string
}

// Get returns the schema with the given name.
func (c *Catalog) Get(name string) (*Schema, bool) {
	sc, ok := c.schemas[name]
	return sc, ok
}

// Names returns the schema names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Len returns the number of schemas in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

// JSON wire structures.
type catalogDoc struct {
	Enums   []enumDoc   `json:"enums"`
	Schemas []schemaDoc `json:"schemas"`
}

type enumDoc struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Values      []valueDoc `json:"values"`
}

type valueDoc struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

type schemaDoc struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	RosEquivalent string     `json:"rosEquivalent"`
	Fields        []fieldDoc `json:"fields"`
}

type fieldDoc struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        typeDoc `json:"type"`
	Array       bool    `json:"array"`
	Length      int     `json:"length"`
}

type typeDoc struct {
	Primitive PrimitiveType
	Nested    string
	Enum      string
}

func (t *typeDoc) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return t.Primitive.UnmarshalJSON(data)
	}
	var ref struct {
		Nested string `json:"nested"`
		Enum   string `json:"enum"`
	}
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("failed to parse type reference: %w", err)
	}
	if (ref.Nested == "") == (ref.Enum == "") {
		return fmt.Errorf("type reference must name exactly one of nested or enum: %s", data)
	}
	t.Nested = ref.Nested
	t.Enum = ref.Enum
	return nil
}

// LoadCatalog parses the supplied JSON documents and resolves all schema and
// enum references across them.
func LoadCatalog(docs ...[]byte) (*Catalog, error) {
	parsed := make([]catalogDoc, 0, len(docs))
	for _, data := range docs {
		var doc catalogDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog document: %w", err)
		}
		parsed = append(parsed, doc)
	}

	enums := map[string]*Enum{}
	catalog := &Catalog{schemas: map[string]*Schema{}}
	for _, doc := range parsed {
		for _, e := range doc.Enums {
			if _, ok := enums[e.Name]; ok {
				return nil, fmt.Errorf("duplicate enum: %s", e.Name)
			}
			enum := &Enum{Name: e.Name, Description: e.Description}
			for _, v := range e.Values {
				enum.Values = append(enum.Values, EnumValue{
					Name:        v.Name,
					Value:       v.Value,
					Description: v.Description,
				})
			}
			enums[e.Name] = enum
		}
		for _, s := range doc.Schemas {
			if _, ok := catalog.schemas[s.Name]; ok {
				return nil, fmt.Errorf("duplicate schema: %s", s.Name)
			}
			catalog.schemas[s.Name] = &Schema{
				Name:          s.Name,
				Description:   s.Description,
				RosEquivalent: s.RosEquivalent,
			}
			catalog.names = append(catalog.names, s.Name)
		}
	}

	// Second pass: fields, with references resolved against the full set.
	for _, doc := range parsed {
		for _, s := range doc.Schemas {
			target := catalog.schemas[s.Name]
			for _, f := range s.Fields {
				field := Field{
					Name:        f.Name,
					Description: f.Description,
					Array:       f.Array,
					FixedLength: f.Length,
				}
				switch {
				case f.Type.Nested != "":
					nested, ok := catalog.schemas[f.Type.Nested]
					if !ok {
						return nil, fmt.Errorf("schema %s references unknown schema %s", s.Name, f.Type.Nested)
					}
					field.Type = Type{Nested: nested}
				case f.Type.Enum != "":
					enum, ok := enums[f.Type.Enum]
					if !ok {
						return nil, fmt.Errorf("schema %s references unknown enum %s", s.Name, f.Type.Enum)
					}
					field.Type = Type{Enum: enum}
				default:
					if f.Type.Primitive == 0 {
						return nil, fmt.Errorf("field %s.%s has no type", s.Name, f.Name)
					}
					field.Type = Type{Primitive: f.Type.Primitive}
				}
				target.Fields = append(target.Fields, field)
			}
		}
	}
	return catalog, nil
}
