package catalog

// The seed inventory of the warung. In a bigger shop this would come from a
// product management system.
var seedProducts = []Product{
	{
		ID:          "1",
		Name:        "Indomie Goreng",
		Description: "Mie goreng instan rasa original",
		Price:       3500,
		Image:       "/images/indomie-goreng.jpg",
		Category:    "Makanan",
		Stock:       100,
	},
	{
		ID:          "2",
		Name:        "Teh Botol Sosro",
		Description: "Teh manis dalam kemasan botol 450ml",
		Price:       5000,
		Image:       "/images/teh-botol.jpg",
		Category:    "Minuman",
		Stock:       50,
	},
	{
		ID:          "3",
		Name:        "Aqua 600ml",
		Description: "Air mineral dalam kemasan botol",
		Price:       4000,
		Image:       "/images/aqua.jpg",
		Category:    "Minuman",
		Stock:       120,
	},
	{
		ID:          "4",
		Name:        "Beras Ramos 5kg",
		Description: "Beras pulen kualitas premium",
		Price:       68000,
		Image:       "/images/beras.jpg",
		Category:    "Sembako",
		Stock:       25,
	},
	{
		ID:          "5",
		Name:        "Minyak Goreng Sania 1L",
		Description: "Minyak goreng kelapa sawit",
		Price:       18000,
		Image:       "/images/minyak.jpg",
		Category:    "Sembako",
		Stock:       40,
	},
	{
		ID:          "6",
		Name:        "Gula Pasir Gulaku 1kg",
		Description: "Gula pasir putih premium",
		Price:       15500,
		Image:       "/images/gula.jpg",
		Category:    "Sembako",
		Stock:       35,
	},
	{
		ID:          "7",
		Name:        "Telur Ayam 1kg",
		Description: "Telur ayam negeri segar",
		Price:       28000,
		Image:       "/images/telur.jpg",
		Category:    "Sembako",
		Stock:       30,
	},
	{
		ID:          "8",
		Name:        "Kopi Kapal Api Special",
		Description: "Kopi bubuk sachet 25gr",
		Price:       2000,
		Image:       "/images/kapal-api.jpg",
		Category:    "Minuman",
		Stock:       200,
	},
	{
		ID:          "9",
		Name:        "Roti Tawar Sari Roti",
		Description: "Roti tawar lembut isi 10 lembar",
		Price:       15000,
		Image:       "/images/roti-tawar.jpg",
		Category:    "Makanan",
		Stock:       15,
	},
	{
		ID:          "10",
		Name:        "Chitato Sapi Panggang",
		Description: "Keripik kentang rasa sapi panggang 68gr",
		Price:       10500,
		Image:       "/images/chitato.jpg",
		Category:    "Makanan",
		Stock:       45,
	},
	{
		ID:          "11",
		Name:        "Sabun Lifebuoy",
		Description: "Sabun mandi batang 85gr",
		Price:       4500,
		Image:       "/images/lifebuoy.jpg",
		Category:    "Kebutuhan Rumah",
		Stock:       60,
	},
	{
		ID:          "12",
		Name:        "Sunlight Jeruk Nipis 755ml",
		Description: "Sabun cuci piring konsentrat",
		Price:       14500,
		Image:       "/images/sunlight.jpg",
		Category:    "Kebutuhan Rumah",
		Stock:       20,
	},
}
