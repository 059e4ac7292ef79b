package catalog

import "atelier/internal/model"

func price(p float64) *float64 { return &p }

// Builtin returns the Atelier house catalogue.
func Builtin() []model.Product {
	return []model.Product{
		{
			ID:            "1",
			Name:          "Merino Wool Overcoat",
			Price:         389,
			OriginalPrice: price(520),
			Image:         "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=600&q=80",
			Category:      "Outerwear",
			Rating:        4.9,
			Reviews:       124,
			Description:   "Luxurious Italian merino wool overcoat with satin lining. Perfect for cold weather elegance.",
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors: []model.ColorVariant{
				{Name: "Charcoal", Hex: "#36454F"},
				{Name: "Camel", Hex: "#C19A6B"},
				{Name: "Navy", Hex: "#000080"},
			},
			InStock: true,
			Tags:    []string{"New Arrival", "Best Seller"},
		},
		{
			ID:          "2",
			Name:        "Cashmere Turtleneck",
			Price:       245,
			Image:       "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=600&q=80",
			Category:    "Knitwear",
			Rating:      4.8,
			Reviews:     89,
			Description: "Ultra-soft 100% cashmere turtleneck sweater. Timeless design meets exceptional comfort.",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors: []model.ColorVariant{
				{Name: "Cream", Hex: "#FFFDD0"},
				{Name: "Black", Hex: "#000000"},
				{Name: "Burgundy", Hex: "#800020"},
			},
			InStock: true,
			Tags:    []string{"Premium"},
		},
		{
			ID:            "3",
			Name:          "Tailored Wool Trousers",
			Price:         195,
			OriginalPrice: price(260),
			Image:         "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=600&q=80",
			Category:      "Bottoms",
			Rating:        4.7,
			Reviews:       156,
			Description:   "Impeccably tailored wool blend trousers with a modern slim fit.",
			Sizes:         []string{"28", "30", "32", "34", "36"},
			Colors: []model.ColorVariant{
				{Name: "Charcoal", Hex: "#36454F"},
				{Name: "Navy", Hex: "#000080"},
				{Name: "Sand", Hex: "#C2B280"},
			},
			InStock: true,
		},
		{
			ID:          "4",
			Name:        "Silk Blend Blazer",
			Price:       425,
			Image:       "https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=600&q=80",
			Category:    "Blazers",
			Rating:      4.9,
			Reviews:     67,
			Description: "Refined silk-wool blend blazer with hand-stitched lapels.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors: []model.ColorVariant{
				{Name: "Midnight", Hex: "#191970"},
				{Name: "Forest", Hex: "#228B22"},
			},
			InStock: true,
			Tags:    []string{"Exclusive"},
		},
		{
			ID:          "5",
			Name:        "Cotton Poplin Shirt",
			Price:       125,
			Image:       "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=600&q=80",
			Category:    "Shirts",
			Rating:      4.6,
			Reviews:     203,
			Description: "Crisp Egyptian cotton poplin shirt with mother-of-pearl buttons.",
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Colors: []model.ColorVariant{
				{Name: "White", Hex: "#FFFFFF"},
				{Name: "Light Blue", Hex: "#ADD8E6"},
				{Name: "Pink", Hex: "#FFC0CB"},
			},
			InStock: true,
		},
		{
			ID:            "6",
			Name:          "Leather Chelsea Boots",
			Price:         345,
			OriginalPrice: price(420),
			Image:         "https://images.unsplash.com/photo-1638247025967-b4e38f787b76?w=600&q=80",
			Category:      "Footwear",
			Rating:        4.8,
			Reviews:       178,
			Description:   "Hand-crafted Italian leather Chelsea boots with Goodyear welt construction.",
			Sizes:         []string{"7", "8", "9", "10", "11", "12"},
			Colors: []model.ColorVariant{
				{Name: "Black", Hex: "#000000"},
				{Name: "Cognac", Hex: "#834333"},
			},
			InStock: true,
			Tags:    []string{"Handcrafted"},
		},
		{
			ID:          "7",
			Name:        "Linen Summer Suit",
			Price:       495,
			Image:       "https://images.unsplash.com/photo-1617137968427-85924c800a22?w=600&q=80",
			Category:    "Suits",
			Rating:      4.7,
			Reviews:     45,
			Description: "Breathable pure linen suit perfect for summer occasions.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors: []model.ColorVariant{
				{Name: "Natural", Hex: "#FAF0E6"},
				{Name: "Sky Blue", Hex: "#87CEEB"},
			},
			InStock: true,
			Tags:    []string{"Seasonal"},
		},
		{
			ID:          "8",
			Name:        "Leather Belt",
			Price:       85,
			Image:       "https://images.unsplash.com/photo-1624222247344-550fb60583dc?w=600&q=80",
			Category:    "Accessories",
			Rating:      4.5,
			Reviews:     312,
			Description: "Full-grain leather belt with brushed silver buckle.",
			Sizes:       []string{"30", "32", "34", "36", "38"},
			Colors: []model.ColorVariant{
				{Name: "Black", Hex: "#000000"},
				{Name: "Brown", Hex: "#8B4513"},
			},
			InStock: true,
		},
	}
}
