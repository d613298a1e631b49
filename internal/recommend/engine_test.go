package recommend

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/kombin-backend/internal/label"
	"github.com/wichananm65/kombin-backend/internal/product"
	"github.com/wichananm65/kombin-backend/internal/taxonomy"
)

func item(url, name, category string, colors ...string) product.Product {
	return product.Product{Name: name, Category: category, ProductURL: url, DominantColors: colors}
}

func newTestEngine(t *testing.T, products []product.Product, opts ...Option) *Engine {
	t.Helper()
	base := []Option{WithRand(rand.New(rand.NewSource(1))), WithLogger(zerolog.Nop())}
	e, err := NewEngine(product.NewCatalog(products), DefaultConfig(), append(base, opts...)...)
	require.NoError(t, err)
	return e
}

func urls(ps []product.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ProductURL)
	}
	return out
}

func TestRecommend_TShirtScenario(t *testing.T) {
	catalog := []product.Product{
		item("b1", "Kumaş Pantolon", "Pantolon"),
		item("b2", "Pileli Etek", "Etek"),
		item("b3", "Bermuda", "Şort"),
		item("b4", "Mom Fit", "Jeans"),
		item("b5", "Kargo Pantolon", "Pantolon"),
		item("a1", "Deri Çanta", "Çanta"),
		item("a2", "Gümüş Kolye", "Takı"),
		item("a3", "Hasır", "Şapka"),
		item("s1", "Koşu", "Spor Ayakkabı"),
		item("t1", "Basic", "T-shirt"),
	}
	e := newTestEngine(t, catalog)

	res, err := e.Recommend(context.Background(), Request{Category: "T-shirt", Count: 2})
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	assert.Equal(t, taxonomy.Tops, res.Main)
	assert.Equal(t, []taxonomy.MainCategory{taxonomy.Bottoms, taxonomy.Outerwear, taxonomy.Accessories}, res.Categories)
	assert.Equal(t, 8, res.PoolSize)
	require.Len(t, res.Recommendations, 2)

	tx := taxonomy.Default()
	for _, p := range res.Recommendations {
		m, ok := tx.Resolve(p.Category)
		require.True(t, ok)
		assert.Contains(t, res.Categories, m)
	}
}

func TestRecommend_ElbiseScenario(t *testing.T) {
	catalog := []product.Product{
		item("o1", "Trençkot", "Mont"),
		item("s1", "Topuklu", "Topuklu Ayakkabı"),
		item("a1", "Kemer", "Kemer"),
		item("t1", "Bluz", "Bluz"),
		item("b1", "Etek", "Etek"),
	}
	e := newTestEngine(t, catalog)

	res, err := e.Recommend(context.Background(), Request{
		Category:          "Elbise",
		CurrentCategories: []string{"Elbise"},
		Count:             10,
	})
	require.NoError(t, err)
	assert.Equal(t, taxonomy.OnePiece, res.Main)
	assert.Equal(t, []taxonomy.MainCategory{taxonomy.Tops, taxonomy.Bottoms, taxonomy.OnePiece}, res.Excluded)
	assert.Equal(t, []taxonomy.MainCategory{taxonomy.Outerwear, taxonomy.Shoes, taxonomy.Accessories}, res.Categories)
	assert.ElementsMatch(t, []string{"o1", "s1", "a1"}, urls(res.Recommendations))
}

func TestRecommend_OnePieceRule(t *testing.T) {
	catalog := []product.Product{
		item("t1", "Bluz", "Bluz"),
		item("b1", "Jean", "Jeans"),
		item("o1", "Hırka", "Hırka"),
		item("s1", "Bot", "Bot"),
		item("a1", "Çanta", "Çanta"),
	}
	e := newTestEngine(t, catalog)
	tx := taxonomy.Default()

	for _, m := range tx.Mains() {
		for _, selected := range tx.SubCategories(m) {
			res, err := e.Recommend(context.Background(), Request{
				Category:          selected,
				CurrentCategories: []string{"Tulum"},
				Count:             50,
			})
			require.NoError(t, err, selected)
			assert.NotContains(t, res.Categories, taxonomy.Tops, selected)
			assert.NotContains(t, res.Categories, taxonomy.Bottoms, selected)
			for _, p := range res.Recommendations {
				assert.NotContains(t, []string{"t1", "b1"}, p.ProductURL, selected)
			}
		}
	}
}

func TestRecommend_TopsDoNotExcludeOnePiece(t *testing.T) {
	e := newTestEngine(t, []product.Product{item("x", "Tulum", "Tulum")})

	res, err := e.Recommend(context.Background(), Request{
		Category:          "Mont",
		CurrentCategories: []string{"Gömlek", "Pantolon"},
	})
	require.NoError(t, err)
	assert.Equal(t, []taxonomy.MainCategory{taxonomy.OnePiece}, res.Categories)
	assert.Equal(t, []string{"x"}, urls(res.Recommendations))
}

func TestRecommend_SelfExclusion(t *testing.T) {
	catalog := []product.Product{
		item("sel", "Seçilen", "T-shirt"),
		item("t1", "Basic", "T-shirt"),
		item("t2", "Saten", "Bluz"),
	}
	e := newTestEngine(t, catalog)

	// a product listed under a category its own main category suggests
	res, err := e.Recommend(context.Background(), Request{Category: "Pantolon", ID: "sel", Count: 10})
	require.NoError(t, err)
	assert.NotContains(t, urls(res.Recommendations), "sel")
	assert.ElementsMatch(t, []string{"t1", "t2"}, urls(res.Recommendations))
}

func TestRecommend_ColorPreference(t *testing.T) {
	catalog := []product.Product{
		item("b1", "A", "Pantolon", "kırmızı", "beyaz"),
		item("b2", "B", "Etek", "mavi"),
		item("b3", "C", "Jeans", "siyah", "Kırmızı"),
		item("b4", "D", "Şort"),
		item("sel", "Seçilen", "Gömlek", "mavi"),
	}
	e := newTestEngine(t, catalog)

	res, err := e.Recommend(context.Background(), Request{Category: "Gömlek", ID: "sel", ColorPreference: "kırmızı", Count: 10})
	require.NoError(t, err)
	require.NotEmpty(t, res.Recommendations)
	for _, p := range res.Recommendations {
		assert.Contains(t, label.FoldAll(p.DominantColors), "kırmızı")
	}
	assert.ElementsMatch(t, []string{"b1", "b3"}, urls(res.Recommendations))
}

func TestRecommend_ColorPreferenceHasNoHarmonyFallback(t *testing.T) {
	catalog := []product.Product{
		item("b1", "A", "Pantolon", "siyah"),
		item("sel", "Seçilen", "Gömlek", "kırmızı"),
	}
	e := newTestEngine(t, catalog)

	res, err := e.Recommend(context.Background(), Request{Category: "Gömlek", ID: "sel", ColorPreference: "mor"})
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	assert.Empty(t, res.Recommendations)
	assert.Empty(t, res.Message)
}

func TestRecommend_ColorHarmony(t *testing.T) {
	catalog := []product.Product{
		item("sel", "Seçilen", "Gömlek", "kırmızı", "mavi"),
		item("keep-green", "A", "Pantolon", "yeşil"),
		item("drop-purple", "B", "Etek", "mor"),
		item("keep-neutral", "C", "Jeans", "siyah"),
		item("drop-blank", "D", "Şort"),
		item("keep-case", "E", "Çanta", "Bordo"),
	}
	e := newTestEngine(t, catalog)

	res, err := e.Recommend(context.Background(), Request{Category: "Gömlek", ID: "sel", Count: 10})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"keep-green", "keep-neutral", "keep-case"}, urls(res.Recommendations))
}

func TestRecommend_UnknownSelectedSkipsHarmony(t *testing.T) {
	catalog := []product.Product{
		item("b1", "A", "Pantolon", "mor"),
		item("b2", "B", "Etek"),
	}
	e := newTestEngine(t, catalog)

	res, err := e.Recommend(context.Background(), Request{Category: "Gömlek", ID: "missing", Count: 10})
	require.NoError(t, err)
	assert.Len(t, res.Recommendations, 2)
}

func TestRecommend_SamplingBound(t *testing.T) {
	catalog := make([]product.Product, 0, 6)
	for _, u := range []string{"b1", "b2", "b3", "b4", "b5", "b6"} {
		catalog = append(catalog, item(u, "Pantolon "+u, "Pantolon"))
	}
	e := newTestEngine(t, catalog)
	pool := map[string]bool{}
	for _, p := range catalog {
		pool[p.ProductURL] = true
	}

	for count := 0; count <= 9; count++ {
		res, err := e.Recommend(context.Background(), Request{Category: "T-shirt", Count: count})
		require.NoError(t, err)

		want := count
		if count == 0 {
			want = DefaultConfig().DefaultCount
		}
		if want > len(catalog) {
			want = len(catalog)
		}
		require.Len(t, res.Recommendations, want, "count=%d", count)

		seen := map[string]bool{}
		for _, p := range res.Recommendations {
			assert.True(t, pool[p.ProductURL])
			assert.False(t, seen[p.ProductURL], "duplicate %s", p.ProductURL)
			seen[p.ProductURL] = true
		}
	}
}

func TestRecommend_CountClampedToMax(t *testing.T) {
	catalog := make([]product.Product, 0, 80)
	for i := 0; i < 80; i++ {
		catalog = append(catalog, item(string(rune('A'+i%26))+string(rune('a'+i/26)), "Etek", "Etek"))
	}
	e := newTestEngine(t, catalog)

	res, err := e.Recommend(context.Background(), Request{Category: "Bluz", Count: 1000})
	require.NoError(t, err)
	assert.Len(t, res.Recommendations, DefaultConfig().MaxCount)
}

func TestRecommend_SilhouetteRollback(t *testing.T) {
	catalog := []product.Product{
		item("t1", "Basic Tişört", "T-shirt"),
		item("t2", "Keten Gömlek", "Gömlek"),
		item("o1", "Kısa Mont", "Mont"),
	}
	e := newTestEngine(t, catalog)

	// no product mentions a shape that balances shorts: keep everything
	res, err := e.Recommend(context.Background(), Request{Category: "Şort", Count: 10})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"t1", "t2", "o1"}, urls(res.Recommendations))

	e = newTestEngine(t, append(catalog, item("o2", "Siyah Blazer", "Ceket & Yelek")))
	res, err = e.Recommend(context.Background(), Request{Category: "Şort", Count: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"o2"}, urls(res.Recommendations))
}

func TestRecommend_SilhouetteUsesSelectedProductCategory(t *testing.T) {
	catalog := []product.Product{
		item("sel", "Bermuda", "Şort"),
		item("t1", "Basic Tişört", "T-shirt"),
		item("t2", "Crop Top Bluz", "Bluz"),
	}
	e := newTestEngine(t, catalog)

	// the request label has no silhouette row, the catalog entry does
	res, err := e.Recommend(context.Background(), Request{Category: "Jeans", ID: "sel", Count: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"t2"}, urls(res.Recommendations))
}

func TestRecommend_StyleSeasonPrecedence(t *testing.T) {
	catalog := []product.Product{
		item("t1", "Basic Tişört", "T-shirt"),
		item("t2", "Crop Bluz", "Bluz"),
		item("s1", "Deri Sandalet", "Ayakkabı"),
	}
	e := newTestEngine(t, catalog)
	ctx := context.Background()

	res, err := e.Recommend(ctx, Request{Category: "Pantolon", StylePreference: "casual", SeasonPreference: "yaz", Count: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, urls(res.Recommendations))

	res, err = e.Recommend(ctx, Request{Category: "Pantolon", SeasonPreference: "YAZ", Count: 10})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"t2", "s1"}, urls(res.Recommendations))

	// an unknown style filters nothing and still takes precedence over season
	res, err = e.Recommend(ctx, Request{Category: "Pantolon", StylePreference: "gothic", SeasonPreference: "yaz", Count: 10})
	require.NoError(t, err)
	assert.Len(t, res.Recommendations, 3)
}

func TestRecommend_StyleCommitsToEmpty(t *testing.T) {
	catalog := []product.Product{
		item("t1", "Basic Tişört", "T-shirt"),
		item("t2", "Crop Bluz", "Bluz"),
	}
	e := newTestEngine(t, catalog)

	res, err := e.Recommend(context.Background(), Request{Category: "Pantolon", StylePreference: "boho"})
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	assert.Empty(t, res.Recommendations)
	assert.Zero(t, res.PoolSize)
}

func TestRecommend_Keywords(t *testing.T) {
	catalog := []product.Product{
		item("t1", "Keten Gömlek", "Gömlek"),
		item("t2", "Saten Bluz", "Bluz"),
		item("t3", "Basic", "T-shirt"),
	}
	e := newTestEngine(t, catalog)
	ctx := context.Background()

	// "shirt" only appears in t3's category, which this stage ignores
	res, err := e.Recommend(ctx, Request{Category: "Etek", StyleKeywords: []string{"KETEN", "shirt"}, Count: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, urls(res.Recommendations))

	res, err = e.Recommend(ctx, Request{Category: "Etek", StyleKeywords: []string{" ", ""}, Count: 10})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"t1", "t2", "t3"}, urls(res.Recommendations))

	res, err = e.Recommend(ctx, Request{Category: "Etek", StyleKeywords: []string{"kadife"}, Count: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Recommendations)
}

func TestRecommend_UnresolvableProductsInvisible(t *testing.T) {
	catalog := []product.Product{
		item("x1", "Kazak", "Kazak"),
		item("x2", "Çorap", ""),
		item("b1", "Pantolon", "Pantolon"),
	}
	e := newTestEngine(t, catalog)

	res, err := e.Recommend(context.Background(), Request{Category: "Bluz", Count: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, urls(res.Recommendations))
}

func TestRecommend_ExclusionMonotonicity(t *testing.T) {
	e := newTestEngine(t, []product.Product{item("x", "x", "Bot")})
	chain := [][]string{
		nil,
		{"Bot"},
		{"Bot", "Mont"},
		{"Bot", "Mont", "Çanta"},
		{"Bot", "Mont", "Çanta", "Gömlek"},
		{"Bot", "Mont", "Çanta", "Gömlek", "Elbise"},
	}

	tx := taxonomy.Default()
	for _, m := range tx.Mains() {
		for _, selected := range tx.SubCategories(m) {
			var prev []taxonomy.MainCategory
			for i, current := range chain {
				res, err := e.Recommend(context.Background(), Request{Category: selected, CurrentCategories: current})
				require.NoError(t, err)
				if i > 0 {
					assert.Subset(t, prev, res.Categories, "%s with %v", selected, current)
				}
				prev = res.Categories
			}
		}
	}
}

func TestRecommend_NoApplicableCategories(t *testing.T) {
	e := newTestEngine(t, []product.Product{item("x", "x", "Bluz")})

	res, err := e.Recommend(context.Background(), Request{Category: "Mont", CurrentCategories: []string{"Elbise"}})
	require.NoError(t, err)
	assert.Equal(t, StatusNoApplicableCategories, res.Status)
	assert.NotEmpty(t, res.Message)
	assert.Empty(t, res.Recommendations)
	assert.NotNil(t, res.Recommendations)
}

func TestRecommend_NoSuitableSubCategories(t *testing.T) {
	tx := taxonomy.New(
		[]taxonomy.Entry{{Main: taxonomy.Tops, Labels: []string{"Bluz"}}},
		map[taxonomy.MainCategory][]taxonomy.MainCategory{taxonomy.Tops: {taxonomy.Shoes}},
		nil,
	)
	e := newTestEngine(t, []product.Product{item("x", "x", "Bot")}, WithTaxonomy(tx))

	res, err := e.Recommend(context.Background(), Request{Category: "Bluz"})
	require.NoError(t, err)
	assert.Equal(t, StatusNoSuitableSubCategories, res.Status)
	assert.NotEmpty(t, res.Message)
	assert.Empty(t, res.Recommendations)
}

func TestRecommend_Errors(t *testing.T) {
	ctx := context.Background()

	empty := newTestEngine(t, nil)
	_, err := empty.Recommend(ctx, Request{Category: "Bluz"})
	assert.ErrorIs(t, err, ErrCatalogUnavailable)

	e := newTestEngine(t, []product.Product{item("x", "x", "Bot")})

	_, err = e.Recommend(ctx, Request{Category: "  "})
	assert.ErrorIs(t, err, ErrCategoryRequired)

	_, err = e.Recommend(ctx, Request{Category: "Kazak"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
	var invalid *InvalidCategoryError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "Kazak", invalid.Label)
}

func TestRecommend_CatalogSwapIsPickedUp(t *testing.T) {
	catalog := product.NewCatalog(nil)
	e, err := NewEngine(catalog, DefaultConfig(), WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	_, err = e.Recommend(context.Background(), Request{Category: "Bluz"})
	require.ErrorIs(t, err, ErrCatalogUnavailable)

	catalog.Replace([]product.Product{item("b1", "Etek", "Etek")})
	res, err := e.Recommend(context.Background(), Request{Category: "Bluz"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, urls(res.Recommendations))
}

func TestRecommend_SeededDeterminism(t *testing.T) {
	catalog := make([]product.Product, 0, 20)
	for i := 0; i < 20; i++ {
		catalog = append(catalog, item("p"+string(rune('a'+i)), "Etek", "Etek"))
	}
	req := Request{Category: "Bluz", Count: 5}

	run := func(seed int64) []string {
		e, err := NewEngine(product.NewCatalog(catalog), DefaultConfig(),
			WithRand(rand.New(rand.NewSource(seed))), WithLogger(zerolog.Nop()))
		require.NoError(t, err)
		res, err := e.Recommend(context.Background(), req)
		require.NoError(t, err)
		return urls(res.Recommendations)
	}
	assert.Equal(t, run(7), run(7))

	cfg := DefaultConfig()
	cfg.Seed = 99
	a, err := NewEngine(product.NewCatalog(catalog), cfg, WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	b, err := NewEngine(product.NewCatalog(catalog), cfg, WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	ra, _ := a.Recommend(context.Background(), req)
	rb, _ := b.Recommend(context.Background(), req)
	assert.Equal(t, urls(ra.Recommendations), urls(rb.Recommendations))
}

func TestRecommend_ResultDoesNotAliasCatalog(t *testing.T) {
	catalog := product.NewCatalog([]product.Product{item("b1", "Etek", "Etek", "mavi")})
	e, err := NewEngine(catalog, DefaultConfig(), WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	res, err := e.Recommend(context.Background(), Request{Category: "Bluz"})
	require.NoError(t, err)
	res.Recommendations[0].DominantColors[0] = "sarı"

	p, _ := catalog.Snapshot().Get("b1")
	assert.Equal(t, "mavi", p.DominantColors[0])
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	_, err := NewEngine(product.NewCatalog(nil), Config{DefaultCount: 5, MaxCount: 2})
	assert.Error(t, err)

	_, err = NewEngine(nil, DefaultConfig())
	assert.Error(t, err)
}
