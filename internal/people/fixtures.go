package people

// SamplePerson is served by /people/sample/ for client smoke tests.
var SamplePerson = PeopleJSON{
	ID:        1,
	Name:      "Luke Skywalker",
	Homeworld: "/planets/1/",
	Height:    172,
	Mass:      77,
	HairColor: "blond",
	Created:   "2014-12-09T13:50:51Z",
}

// SamplePeople is served by /people/samples/.
var SamplePeople = []PeopleJSON{
	SamplePerson,
	{
		ID:        2,
		Name:      "C-3PO",
		Homeworld: "/planets/1/",
		Height:    167,
		Mass:      75,
		HairColor: "n/a",
		Created:   "2014-12-10T15:10:51Z",
	},
	{
		ID:        3,
		Name:      "Leia Organa",
		Homeworld: "/planets/2/",
		Height:    150,
		Mass:      49,
		HairColor: "brown",
		Created:   "2014-12-10T15:20:09Z",
	},
}
