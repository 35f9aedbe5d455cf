package people

// People is a character record. HomeworldID references a planet.
type People struct {
	ID          int
	Name        string
	HomeworldID int
	Height      int
	Mass        int
	HairColor   string
	Created     string
}

// Field names a client-writable People attribute.
type Field string

const (
	FieldName      Field = "name"
	FieldHomeworld Field = "homeworld"
	FieldHeight    Field = "height"
	FieldMass      Field = "mass"
	FieldHairColor Field = "hair_color"
	FieldCreated   Field = "created"
)

// UpdatableFields is the fixed set accepted by PUT and PATCH, in apply order.
// A PUT must carry exactly these keys.
var UpdatableFields = []Field{FieldName, FieldHomeworld, FieldHeight, FieldMass, FieldHairColor}

func isUpdatable(name string) bool {
	for _, f := range UpdatableFields {
		if string(f) == name {
			return true
		}
	}
	return false
}
