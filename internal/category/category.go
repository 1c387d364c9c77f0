package category

// Category groups drinks on the storefront and maps to the `category`
// table. Ord controls display order, highest first.
type Category struct {
	ID       int     `json:"categoryId"`
	Name     string  `json:"categoryName"`
	ImageURL *string `json:"categoryImg,omitempty"`
	Ord      int     `json:"ord"`
}
