package seed

type productSeed struct {
	Name        string
	Description string
	Price       int64
	Category    string
	ImageURL    string
	Rating      float64
	Stock       int
}

var catalog = []productSeed{
	{
		Name:        "Modern Corner Sofa",
		Description: "Elegant and spacious L-shaped sofa for your living room. Crafted with premium fabric, solid frame, and plush cushioning for unmatched comfort. Perfect for hosting guests or relaxing with family.",
		Price:       15999,
		Category:    "Sofas",
		ImageURL:    "https://images.unsplash.com/photo-1705028877408-209f583a5008?q=80&w=880&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      4,
		Stock:       10,
	},
	{
		Name:        "Velvet Luxe Sofa Set",
		Description: "3-seater plush velvet sofa with premium stitching.",
		Price:       22999,
		Category:    "Sofas",
		ImageURL:    "https://images.unsplash.com/photo-1658500353815-4d22b7cc6dd3?q=80&w=1170&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      4.5,
		Stock:       8,
	},
	{
		Name:        "Scandinavian Wooden Sofa",
		Description: "Minimalistic wooden-framed sofa with grey cushions.",
		Price:       17999,
		Category:    "Sofas",
		ImageURL:    "https://images.unsplash.com/photo-1562606795-1a23df4e65c5?q=80&w=688&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      3.5,
		Stock:       5,
	},
	{
		Name:        "Minimalist Ceiling Light",
		Description: "Flush mount LED ceiling light that brings elegance and energy efficiency to your space. Long-lasting, glare-free lighting ideal for bedrooms and hallways.",
		Price:       12499,
		Category:    "Lighting",
		ImageURL:    "https://i.pinimg.com/736x/04/87/94/04879493fd1edb91f1b8625f275f1c0c.jpg",
		Rating:      4.2,
		Stock:       15,
	},
	{
		Name:        "Metal Wall Art",
		Description: "3-piece modern metal wall decor. Adds depth and luxury to your walls, hand-finished in rustic gold-black shades. A statement piece for living rooms and offices.",
		Price:       8999,
		Category:    "Wall Decor",
		ImageURL:    "https://rukminim2.flixcart.com/image/850/1000/xif0q/wall-decoration/w/p/x/metal-wall-decor-wall-arts-for-home-living-room-hotel-decoration-original-imagqhzbtq8qhy4s.jpeg?q=90&crop=false",
		Rating:      4.5,
		Stock:       20,
	},
	{
		Name:        "Luxury King Bed Set",
		Description: "Comfortable king-sized bed with padded headboard and storage drawers. Crafted with engineered wood and premium upholstery. The ultimate sleep experience.",
		Price:       24999,
		Category:    "Beds",
		ImageURL:    "https://www.ikea.com/images/a-dunvik-divan-bed-with-white-nattjasmin-bed-linen-stands-in-546f300088dddceb8aff9d7b9597401a.jpg?f=s",
		Rating:      5,
		Stock:       8,
	},
	{
		Name:        "Wardrobe with Mirror",
		Description: "Sleek 3-door wardrobe with full-length mirror. Includes hanging space, drawers, and adjustable shelves. Designed for functionality and elegance.",
		Price:       18999,
		Category:    "Storage",
		ImageURL:    "https://www.ikea.com/ext/ingkadam/m/1a0bf090813a9481/original/PH193642-crop002.jpg?f=s",
		Rating:      4,
		Stock:       12,
	},
	{
		Name:        "Bohemian Area Rug",
		Description: "Handwoven multicolor rug crafted with natural fibers. Adds warmth and vibrancy to your living room or bedroom. Anti-skid backing for safety.",
		Price:       7499,
		Category:    "Rugs",
		ImageURL:    "https://images.unsplash.com/photo-1631466882094-d4af58ef7025?q=80&w=735&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      3,
		Stock:       18,
	},
	{
		Name:        "Rustic Coffee Table",
		Description: "Solid mango wood coffee table with open shelf. Rustic finish that pairs beautifully with industrial and vintage decor. Durable and easy to maintain.",
		Price:       8499,
		Category:    "Tables",
		ImageURL:    "https://images.unsplash.com/photo-1579173361852-eea884c0c480?q=80&w=687&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      4.5,
		Stock:       10,
	},
	{
		Name:        "Floating Wall Shelves",
		Description: "Set of 3 wall-mounted shelves. Made from engineered wood with matte finish. Ideal for books, plants, or decor. Easy to install.",
		Price:       3299,
		Category:    "Wall Decor",
		ImageURL:    "https://plus.unsplash.com/premium_photo-1700502418297-535c711d63c6?q=80&w=687&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      3.5,
		Stock:       25,
	},
	{
		Name:        "Nordic Dining Set",
		Description: "6-seater wooden dining table with cushioned chairs. Scandinavian design meets Indian comfort. Scratch-resistant and water-repellent surface.",
		Price:       31999,
		Category:    "Dining",
		ImageURL:    "https://plus.unsplash.com/premium_photo-1673214881759-4bd60b76acae?q=80&w=880&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      4,
		Stock:       7,
	},
	{
		Name:        "Artisan Clay Vase",
		Description: "Handcrafted terracotta vase for side tables, consoles, or centerpieces. Matte earthy finish with natural patterns. Supports local artisans.",
		Price:       1299,
		Category:    "Decor",
		ImageURL:    "https://images.unsplash.com/photo-1529079091004-2b0ed179f9f2?q=80&w=687&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      4,
		Stock:       30,
	},
	{
		Name:        "Macrame Wall Hanging",
		Description: "Boho-style cotton rope wall hanging with wooden dowel. Perfect for bedrooms, balconies or cafes. Eco-friendly and handmade.",
		Price:       1999,
		Category:    "Wall Decor",
		ImageURL:    "https://plus.unsplash.com/premium_photo-1694289986113-874e1e48a1c1?q=80&w=687&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      5,
		Stock:       40,
	},
	{
		Name:        "Velvet Accent Chair",
		Description: "Luxurious deep green velvet chair with gold legs. Adds a pop of color to your space. Great for reading corners and cozy nooks.",
		Price:       11999,
		Category:    "Seating",
		ImageURL:    "https://images.unsplash.com/photo-1520453714493-d85cdd7b033b?q=80&w=1144&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      3,
		Stock:       9,
	},
	{
		Name:        "Round Mirror with Frame",
		Description: "Minimalist round mirror with sleek black metal frame. Easy wall mounting, anti-rust. Ideal for bathrooms, entryways, or vanity.",
		Price:       3499,
		Category:    "Mirrors",
		ImageURL:    "https://images.unsplash.com/photo-1585033120874-0300a04ded70?q=80&w=1974&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      3,
		Stock:       17,
	},
	{
		Name:        "Entryway Shoe Rack",
		Description: "Compact wooden shoe rack with cushioned seating. Holds up to 12 pairs. Blends functionality and style for modern entryways.",
		Price:       4799,
		Category:    "Storage",
		ImageURL:    "https://images.unsplash.com/photo-1686496895853-82012d536ef9?q=80&w=785&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      3,
		Stock:       22,
	},
	{
		Name:        "LED Pendant Lights (3pc)",
		Description: "Set of 3 modern pendant lights for kitchen or dining area. Warm white glow. Height adjustable and energy saving.",
		Price:       8999,
		Category:    "Lighting",
		ImageURL:    "https://images.unsplash.com/photo-1709205656333-aa54fd89560f?q=80&w=687&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      3.5,
		Stock:       14,
	},
	{
		Name:        "Vintage Chandelier",
		Description: "Rustic metal chandelier with 6 candle-style bulbs.",
		Price:       14999,
		Category:    "Lighting",
		ImageURL:    "https://images.unsplash.com/photo-1707128406519-75776c34102e?q=80&w=2071&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      4,
		Stock:       6,
	},
	{
		Name:        "Modern Corner Study Set",
		Description: "Elevate your workspace with our sleek and functional Modern Corner Study Set. Features a spacious corner desk, built-in bookshelf with closed cabinets and open shelves, and two comfortable teal chairs. Ideal for students and professionals.",
		Price:       7500,
		Category:    "Study",
		ImageURL:    "https://plus.unsplash.com/premium_photo-1732730224574-d05fc344b03c?q=80&w=687&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Rating:      3.5,
		Stock:       6,
	},
}
