package planet

type Planet struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Climate    string `json:"climate"`
	Terrain    string `json:"terrain"`
	Population string `json:"population"`
	Created    string `json:"created"`
}

type CreateRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Climate    string `json:"climate" validate:"max=255"`
	Terrain    string `json:"terrain" validate:"max=255"`
	Population string `json:"population" validate:"max=64"`
	Created    string `json:"created" validate:"max=64"`
}
