package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/furniture-catalog/internal/models"
)

func TestParse_Template(t *testing.T) {
	products, err := Parse(strings.NewReader(Template()))
	require.NoError(t, err)

	want := []models.Product{
		{ID: 1, Name: "Modern Linen Sofa", Category: "Sofas", Price: 45000, Image: "/products/sofa-1.jpg", IsNew: true},
		{ID: 2, Name: "L-Shape Sectional", Category: "Couches", Price: 68000, Image: "/products/couch-1.jpg", IsNew: false},
		{ID: 3, Name: "King Size Bed", Category: "Beds", Price: 55000, Image: "/products/bed-1.jpg", IsNew: false},
	}
	assert.Equal(t, want, products)
}

func TestParse_AlternateHeaders(t *testing.T) {
	in := "Type,Product,Photo URL,Cost Price,Arrival\n" +
		"Beds,Queen Bed,/b.jpg,\"KSh 32,500\",true\n"

	products, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "Queen Bed", p.Name)
	assert.Equal(t, "Beds", p.Category)
	assert.Equal(t, 32500, p.Price)
	assert.Equal(t, "/b.jpg", p.Image)
	assert.True(t, p.IsNew)
}

func TestParse_Defaults(t *testing.T) {
	in := "Name,Category,Price,Image,New\n" +
		"Plain Stool,,,,\n"

	products, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, DefaultCategory, p.Category)
	assert.Equal(t, 0, p.Price)
	assert.Equal(t, DefaultImage, p.Image)
	assert.False(t, p.IsNew)
}

func TestParse_DropsRowsWithoutName(t *testing.T) {
	in := "Name,Price\n" +
		"Sofa A,100\n" +
		",200\n" +
		"Sofa C,300\n"

	products, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, 3, products[1].ID, "ids follow row position, including dropped rows")
}

func TestParse_MissingColumns(t *testing.T) {
	products, err := Parse(strings.NewReader("Name\nBench\n"))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, DefaultCategory, products[0].Category)
	assert.Equal(t, DefaultImage, products[0].Image)
}

func TestParse_ShortRows(t *testing.T) {
	in := "Name,Category,Price\n" +
		"Desk\n"

	products, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Desk", products[0].Name)
	assert.Equal(t, 0, products[0].Price)
}

func TestParse_StripsBOM(t *testing.T) {
	in := "\ufeffName,Price\nOttoman,9000\n"

	products, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Ottoman", products[0].Name)
	assert.Equal(t, 9000, products[0].Price)
}

func TestParse_NoRows(t *testing.T) {
	for name, in := range map[string]string{
		"empty":       "",
		"header only": "Name,Price\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(in))
			assert.ErrorIs(t, err, ErrNoRows)
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := map[string]int{
		"45000":      45000,
		"KSh 45,000": 45000,
		"45.000":     45000,
		"":           0,
		"free":       0,
	}
	for in, want := range tests {
		assert.Equal(t, want, parsePrice(in), "parsePrice(%q)", in)
	}
}

func TestParseIsNew(t *testing.T) {
	for _, v := range []string{"yes", "YES", "true", "True", "1"} {
		assert.True(t, parseIsNew(v), v)
	}
	for _, v := range []string{"", "no", "0", "y", "false"} {
		assert.False(t, parseIsNew(v), v)
	}
}

func TestImport_ReportsSkippedRows(t *testing.T) {
	in := "Name,Price\n" +
		",100\n" +
		"Chair,200\n" +
		"Product 3,300\n"

	res, err := Import(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, res.Products, 1)
	assert.Equal(t, "Chair", res.Products[0].Name)
	assert.Equal(t, []int{1, 3}, res.Skipped, "a literal placeholder name is dropped too")
}
