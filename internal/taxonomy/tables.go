package taxonomy

var defaultEntries = []Entry{
	{Main: Tops, Labels: []string{"T-shirt", "Gömlek", "Sweatshirt", "Bluz", "Crop-Top"}},
	{Main: Bottoms, Labels: []string{"Pantolon", "Etek", "Şort", "Jeans"}},
	{Main: Outerwear, Labels: []string{"Ceket & Yelek", "Hırka", "Mont"}},
	{Main: OnePiece, Labels: []string{"Alt-Üst Takım", "Elbise", "Tulum"}},
	{Main: Shoes, Labels: []string{"Ayakkabı", "Spor Ayakkabı", "Bot", "Topuklu Ayakkabı"}},
	{Main: Accessories, Labels: []string{"Çanta", "Takı", "Şapka", "Kemer"}},
}

var defaultGraph = map[MainCategory][]MainCategory{
	Tops:        {Bottoms, Outerwear, Accessories},
	Bottoms:     {Tops, Outerwear, Shoes, Accessories},
	Outerwear:   {Tops, Bottoms, OnePiece},
	OnePiece:    {Outerwear, Shoes, Accessories},
	Shoes:       {Bottoms, OnePiece, Tops},
	Accessories: {Tops, Bottoms, OnePiece},
}

// accessories are the only class an outfit can stack
var defaultSingleInstance = []MainCategory{Tops, Bottoms, Outerwear, OnePiece, Shoes}

var defaultTaxonomy = New(defaultEntries, defaultGraph, defaultSingleInstance)

// Default returns the built-in garment taxonomy.
func Default() Taxonomy {
	return defaultTaxonomy
}
