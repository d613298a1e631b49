package palette

var defaultTable = map[string]Relations{
	"kırmızı": {
		Complementary: []string{"yeşil"},
		Analogous:     []string{"turuncu", "pembe"},
		Triadic:       []string{"mavi", "sarı"},
		Monochrome:    []string{"bordo", "açık kırmızı"},
	},
	"mavi": {
		Complementary: []string{"turuncu"},
		Analogous:     []string{"lacivert", "mor"},
		Triadic:       []string{"kırmızı", "sarı"},
		Monochrome:    []string{"açık mavi", "lacivert"},
	},
	"sarı": {
		Complementary: []string{"mor"},
		Analogous:     []string{"turuncu", "yeşil"},
		Triadic:       []string{"kırmızı", "mavi"},
		Monochrome:    []string{"açık sarı", "altın"},
	},
	"lacivert": {
		Complementary: []string{"turuncu", "bej"},
		Analogous:     []string{"açık mavi", "mor"},
		Triadic:       []string{"kahverengi", "bej"},
		Monochrome:    []string{"açık mavi", "denim"},
	},
	"bordo": {
		Complementary: []string{"zeytin yeşili"},
		Analogous:     []string{"kırmızı", "kahverengi"},
		Triadic:       []string{"lacivert", "bej"},
		Monochrome:    []string{"açık bordo", "koyu bordo"},
	},
	"yeşil": {
		Complementary: []string{"kırmızı"},
		Analogous:     []string{"zeytin", "sarı yeşil"},
		Triadic:       []string{"turuncu", "mor"},
		Monochrome:    []string{"açık yeşil", "haki"},
	},
	"turuncu": {
		Complementary: []string{"mavi"},
		Analogous:     []string{"kırmızı", "sarı"},
		Triadic:       []string{"yeşil", "mor"},
		Monochrome:    []string{"açık turuncu", "koyu turuncu"},
	},
	"mor": {
		Complementary: []string{"sarı"},
		Analogous:     []string{"lacivert", "pembe"},
		Triadic:       []string{"yeşil", "turuncu"},
		Monochrome:    []string{"açık mor", "lila"},
	},
	"bej": {
		Complementary: []string{"lacivert"},
		Analogous:     []string{"kahverengi", "krem"},
		Triadic:       []string{"beyaz", "siyah"},
		Monochrome:    []string{"krem", "kum rengi"},
	},
	"kahverengi": {
		Complementary: []string{"mavi"},
		Analogous:     []string{"bej", "krem"},
		Triadic:       []string{"lacivert", "yeşil"},
		Monochrome:    []string{"açık kahverengi", "koyu kahverengi"},
	},
	"gri": {
		Complementary: []string{"bordo"},
		Analogous:     []string{"beyaz", "siyah"},
		Triadic:       []string{"mavi", "kırmızı"},
		Monochrome:    []string{"açık gri", "antrasit"},
	},
	"siyah": {
		Complementary: []string{"beyaz"},
		Analogous:     []string{"gri", "bej"},
		Triadic:       []string{"kırmızı", "mavi"},
		Monochrome:    []string{"antrasit", "gri"},
	},
	"beyaz": {
		Complementary: []string{"siyah"},
		Analogous:     []string{"gri", "bej"},
		Triadic:       []string{"kırmızı", "mavi"},
		Monochrome:    []string{"açık gri", "krem"},
	},
}

var defaultNeutrals = []string{"siyah", "beyaz", "gri", "bej", "lacivert"}

var defaultHarmony = New(defaultTable, defaultNeutrals)

// Default returns the built-in harmony table.
func Default() Harmony {
	return defaultHarmony
}
