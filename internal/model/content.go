package model

// Program is a fixed travel package offering.
type Program struct {
	Title       string   `json:"title"`
	Duration    string   `json:"duration"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

// Testimonial is a participant quote. Rating is display-only and drives the star count.
type Testimonial struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
	Text        string `json:"text"`
	Rating      int    `json:"rating"`
}

// GalleryImage is a single gallery entry.
type GalleryImage struct {
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

// AboutStat is one of the cards in the "about us" block.
type AboutStat struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}
