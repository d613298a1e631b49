package heuristics

var defaultOptions = Options{
	Styles: []Group{
		{Key: "spor", Keywords: []string{"Eşofman", "Crop", "Sneaker"}},
		{Key: "casual", Keywords: []string{"Jean", "Tişört", "Ceket"}},
		{Key: "chic", Keywords: []string{"Blazer", "Dar Pantolon", "Top", "Topuklu Ayakkabı"}},
		{Key: "streetwear", Keywords: []string{"Oversize", "Sneaker", "Bucket Hat"}},
		{Key: "boho", Keywords: []string{"Salaş Elbise", "Etnik Desen", "Sandalet"}},
	},
	Seasons: []Group{
		{Key: "yaz", Keywords: []string{"Şort", "Crop", "Sandalet"}},
		{Key: "kış", Keywords: []string{"Skinny Jean", "Kazak", "Palto", "Bot"}},
		{Key: "ilkbahar", Keywords: []string{"Elbise", "Jean Ceket"}},
		{Key: "sonbahar", Keywords: []string{"Trençkot", "Jean", "Tişört"}},
	},
	Silhouettes: []Group{
		{Key: "Bol Pantolon", Keywords: []string{"Crop Top", "Fitted", "Kısa Üst", "Body"}},
		{Key: "Dar Pantolon", Keywords: []string{"Oversize Tişört", "Sweatshirt", "Gömlek"}},
		{Key: "Midi Etek", Keywords: []string{"Basic Tişört", "Crop", "Body"}},
		{Key: "Mini Etek", Keywords: []string{"Oversize Gömlek", "Blazer"}},
		{Key: "Şort", Keywords: []string{"Oversize Gömlek", "Blazer", "Crop Top"}},
		{Key: "Jean", Keywords: []string{"Crop Top", "Oversize Tişört", "Blazer"}},
	},
	ShoeStyles: []Group{
		{Key: "Sneaker", Keywords: []string{"Spor", "Streetwear"}},
		{Key: "Topuklu", Keywords: []string{"Chic", "Klasik"}},
		{Key: "Bot", Keywords: []string{"Kış", "Sonbahar", "Rock", "Grunge"}},
		{Key: "Sandalet", Keywords: []string{"Boho", "Yaz"}},
	},
	Proportions: map[string]string{
		"Crop Top":        "Yüksek Bel Pantolon",
		"Oversize Tişört": "Düşük Bel Pantolon",
	},
}

var defaultTables = New(defaultOptions)

// Default returns the built-in heuristic tables.
func Default() Tables {
	return defaultTables
}
