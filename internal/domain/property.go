package domain

type Property struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Price       float64  `json:"price" yaml:"price"`
	Location    string   `json:"location" yaml:"location"`
	Image       *string  `json:"image,omitempty" yaml:"image"`
	Bedrooms    *int     `json:"bedrooms,omitempty" yaml:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms,omitempty" yaml:"bathrooms"`
	Size        *int     `json:"size,omitempty" yaml:"size"`
	YearBuilt   *int     `json:"yearBuilt,omitempty" yaml:"yearBuilt"`
	Amenities   []string `json:"amenities" yaml:"amenities"`
}
