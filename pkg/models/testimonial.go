package models

type Testimonial struct {
	ID      string `json:"id"`
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Company string `json:"company"`
}

// Testimonials is the fixed catalog shown on the portfolio page, in
// its neutral default order.
var Testimonials = []Testimonial{
	{
		ID:      "test-1",
		Quote:   "The team's creativity and attention to detail for our new company website were outstanding. They captured our brand's essence perfectly.",
		Author:  "Jane Doe",
		Company: "Tech Solutions Inc.",
	},
	{
		ID:      "test-2",
		Quote:   "Working with them on our mobile app was a fantastic experience. The final product exceeded all our expectations and our users love it.",
		Author:  "John Smith",
		Company: "FitLife Apps",
	},
	{
		ID:      "test-3",
		Quote:   "The rebranding project was a huge success. We've seen a significant increase in brand recognition and customer engagement.",
		Author:  "Emily White",
		Company: "Creative Co.",
	},
	{
		ID:      "test-4",
		Quote:   "Their insights into UI/UX are second to none. The e-commerce redesign not only looks great but is also incredibly user-friendly.",
		Author:  "Michael Brown",
		Company: "Shopify Store Pro",
	},
}
