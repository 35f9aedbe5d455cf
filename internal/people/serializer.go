package people

import "swapi-server/internal/planet"

// PeopleJSON is the wire representation of a People record.
type PeopleJSON struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Homeworld string `json:"homeworld"`
	Height    int    `json:"height"`
	Mass      int    `json:"mass"`
	HairColor string `json:"hair_color"`
	Created   string `json:"created"`
}

// Serialize converts a People record into its JSON document. The homeworld is
// rendered as a planet URL so it can be posted back unchanged.
func Serialize(p People) PeopleJSON {
	return PeopleJSON{
		ID:        p.ID,
		Name:      p.Name,
		Homeworld: planet.URL(p.HomeworldID),
		Height:    p.Height,
		Mass:      p.Mass,
		HairColor: p.HairColor,
		Created:   p.Created,
	}
}

// SerializeAll never returns nil so an empty collection encodes as [].
func SerializeAll(people []People) []PeopleJSON {
	out := make([]PeopleJSON, 0, len(people))
	for _, p := range people {
		out = append(out, Serialize(p))
	}
	return out
}
