package domain

// Genre describes a movie genre.
type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Director describes a movie director.
type Director struct {
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Birth string `json:"birth,omitempty"`
	Death string `json:"death,omitempty"`
}

// Movie is a catalog entry. The catalog is read-mostly from this service's
// point of view: users reference movies by ID in their favorites but never
// mutate them here.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
	ImagePath   string   `json:"image_path,omitempty"`
	Featured    bool     `json:"featured"`
}
