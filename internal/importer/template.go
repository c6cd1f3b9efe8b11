package importer

// TemplateFilename is the suggested download name for Template.
const TemplateFilename = "products_template.csv"

const template = `Product Name,Category,Price,Image,Is New
Modern Linen Sofa,Sofas,45000,/products/sofa-1.jpg,Yes
L-Shape Sectional,Couches,68000,/products/couch-1.jpg,No
King Size Bed,Beds,55000,/products/bed-1.jpg,No
`

// Template returns an example CSV with every recognised column.
func Template() string {
	return template
}
