package catalog

import "modernstore/internal/domain"

// Seed returns the fixed product catalog. Entries are value types; callers
// get a fresh slice on every call and never mutate the backing data.
func Seed() []domain.Product {
	products := make([]domain.Product, len(seed))
	copy(products, seed)
	return products
}

// Categories returns "all" followed by the distinct product categories in
// first-seen order.
func Categories(products []domain.Product) []string {
	seen := make(map[string]bool, 8)
	categories := []string{domain.CategoryAll}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

var seed = []domain.Product{
	{
		ID:          "1",
		Name:        "Wireless Headphones",
		Description: "Premium noise-cancelling wireless headphones with 30-hour battery life",
		Price:       299.99,
		ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
		Rating:      4.5,
		ReviewCount: 128,
		InStock:     true,
		Category:    "electronics",
	},
	{
		ID:          "2",
		Name:        "Professional Camera",
		Description: "Mirrorless camera with 24MP sensor and 4K video recording",
		Price:       1299.99,
		ImageURL:    "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=500",
		Rating:      4.7,
		ReviewCount: 256,
		InStock:     true,
		Category:    "electronics",
	},
	{
		ID:          "3",
		Name:        "Running Shoes",
		Description: "Lightweight running shoes with superior cushioning",
		Price:       129.99,
		ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
		Rating:      4.8,
		ReviewCount: 456,
		InStock:     true,
		Category:    "clothing",
	},
	{
		ID:          "4",
		Name:        "Classic Denim Jacket",
		Description: "Timeless denim jacket with a modern fit",
		Price:       89.99,
		ImageURL:    "https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=500",
		Rating:      4.6,
		ReviewCount: 203,
		InStock:     true,
		Category:    "clothing",
	},
	{
		ID:          "5",
		Name:        "Smart Watch",
		Description: "Fitness tracker with heart rate monitor and GPS",
		Price:       199.99,
		ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
		Rating:      4.3,
		ReviewCount: 89,
		InStock:     true,
		Category:    "electronics",
	},
	{
		ID:          "6",
		Name:        "Cotton T-Shirt",
		Description: "Comfortable 100% organic cotton t-shirt",
		Price:       24.99,
		ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
		Rating:      4.4,
		ReviewCount: 342,
		InStock:     true,
		Category:    "clothing",
	},
	{
		ID:          "7",
		Name:        "Sunglasses",
		Description: "UV protection polarized sunglasses",
		Price:       79.99,
		ImageURL:    "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500",
		Rating:      4.6,
		ReviewCount: 145,
		InStock:     true,
		Category:    "accessories",
	},
	{
		ID:          "8",
		Name:        "Aromatherapy Diffuser",
		Description: "Ultrasonic essential oil diffuser with LED lights",
		Price:       34.99,
		ImageURL:    "https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?w=500",
		Rating:      4.7,
		ReviewCount: 423,
		InStock:     true,
		Category:    "home",
	},
	{
		ID:          "9",
		Name:        "Leather Wallet",
		Description: "Genuine leather bifold wallet with RFID protection",
		Price:       45.99,
		ImageURL:    "https://images.unsplash.com/photo-1627123424574-724758594e93?w=500",
		Rating:      4.7,
		ReviewCount: 267,
		InStock:     true,
		Category:    "accessories",
	},
	{
		ID:          "10",
		Name:        "Throw Pillow Set",
		Description: "Set of 4 decorative throw pillows with removable covers",
		Price:       39.99,
		ImageURL:    "https://images.unsplash.com/photo-1584100936595-c0654b55a2e2?w=500",
		Rating:      4.3,
		ReviewCount: 89,
		InStock:     true,
		Category:    "home",
	},
	{
		ID:          "11",
		Name:        "Canvas Backpack",
		Description: "Durable canvas backpack with laptop compartment",
		Price:       64.99,
		ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500",
		Rating:      4.5,
		ReviewCount: 198,
		InStock:     false,
		Category:    "accessories",
	},
	{
		ID:          "12",
		Name:        "Wall Art Canvas",
		Description: "Modern abstract canvas wall art 24x36 inches",
		Price:       89.99,
		ImageURL:    "https://images.unsplash.com/photo-1561214115-f2f134cc4912?w=500",
		Rating:      4.6,
		ReviewCount: 156,
		InStock:     true,
		Category:    "home",
	},
	{
		ID:          "13",
		Name:        "Wireless Mouse",
		Description: "Ergonomic wireless mouse with precision tracking",
		Price:       39.99,
		ImageURL:    "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500",
		Rating:      4.4,
		ReviewCount: 164,
		InStock:     false,
		Category:    "electronics",
	},
	{
		ID:          "14",
		Name:        "Winter Hoodie",
		Description: "Warm fleece-lined hoodie for cold weather",
		Price:       59.99,
		ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500",
		Rating:      4.5,
		ReviewCount: 178,
		InStock:     true,
		Category:    "clothing",
	},
	{
		ID:          "15",
		Name:        "Stainless Steel Watch",
		Description: "Minimalist design with automatic movement",
		Price:       249.99,
		ImageURL:    "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=500",
		Rating:      4.8,
		ReviewCount: 312,
		InStock:     true,
		Category:    "accessories",
	},
	{
		ID:          "16",
		Name:        "Table Lamp",
		Description: "Modern LED desk lamp with adjustable brightness and color temperature",
		Price:       54.99,
		ImageURL:    "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500",
		Rating:      4.9,
		ReviewCount: 534,
		InStock:     true,
		Category:    "home",
	},
	{
		ID:          "17",
		Name:        "Bluetooth Speaker",
		Description: "Portable waterproof speaker with 360° sound and 12-hour battery",
		Price:       89.99,
		ImageURL:    "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500",
		Rating:      4.6,
		ReviewCount: 342,
		InStock:     true,
		Category:    "electronics",
	},
	{
		ID:          "18",
		Name:        "Yoga Pants",
		Description: "High-waisted moisture-wicking yoga leggings with pockets",
		Price:       49.99,
		ImageURL:    "https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=500",
		Rating:      4.7,
		ReviewCount: 289,
		InStock:     true,
		Category:    "clothing",
	},
	{
		ID:          "19",
		Name:        "Leather Crossbody Bag",
		Description: "Compact genuine leather crossbody bag with adjustable strap",
		Price:       129.99,
		ImageURL:    "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=500",
		Rating:      4.8,
		ReviewCount: 215,
		InStock:     true,
		Category:    "accessories",
	},
	{
		ID:          "20",
		Name:        "Coffee Maker",
		Description: "Programmable drip coffee maker with thermal carafe",
		Price:       79.99,
		ImageURL:    "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500",
		Rating:      4.5,
		ReviewCount: 412,
		InStock:     true,
		Category:    "home",
	},
	{
		ID:          "21",
		Name:        "Mechanical Keyboard",
		Description: "RGB backlit mechanical gaming keyboard with blue switches",
		Price:       119.99,
		ImageURL:    "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500",
		Rating:      4.7,
		ReviewCount: 523,
		InStock:     true,
		Category:    "electronics",
	},
	{
		ID:          "22",
		Name:        "Bomber Jacket",
		Description: "Classic bomber jacket with ribbed collar and cuffs",
		Price:       149.99,
		ImageURL:    "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500",
		Rating:      4.6,
		ReviewCount: 178,
		InStock:     true,
		Category:    "clothing",
	},
	{
		ID:          "23",
		Name:        "Baseball Cap",
		Description: "Adjustable cotton baseball cap with embroidered logo",
		Price:       29.99,
		ImageURL:    "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?w=500",
		Rating:      4.4,
		ReviewCount: 267,
		InStock:     true,
		Category:    "accessories",
	},
	{
		ID:          "24",
		Name:        "Ceramic Vase Set",
		Description: "Set of 3 modern geometric ceramic vases in neutral tones",
		Price:       44.99,
		ImageURL:    "https://images.unsplash.com/photo-1578500494198-246f612d3b3d?w=500",
		Rating:      4.6,
		ReviewCount: 189,
		InStock:     true,
		Category:    "home",
	},
	{
		ID:          "25",
		Name:        "Wireless Earbuds",
		Description: "True wireless earbuds with active noise cancellation",
		Price:       159.99,
		ImageURL:    "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=500",
		Rating:      4.5,
		ReviewCount: 678,
		InStock:     true,
		Category:    "electronics",
	},
	{
		ID:          "26",
		Name:        "Sneakers",
		Description: "Casual canvas sneakers with cushioned insole",
		Price:       69.99,
		ImageURL:    "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=500",
		Rating:      4.5,
		ReviewCount: 445,
		InStock:     false,
		Category:    "clothing",
	},
	{
		ID:          "27",
		Name:        "Leather Belt",
		Description: "Reversible leather belt with silver buckle",
		Price:       39.99,
		ImageURL:    "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=500",
		Rating:      4.7,
		ReviewCount: 234,
		InStock:     true,
		Category:    "accessories",
	},
	{
		ID:          "28",
		Name:        "Bedside Table",
		Description: "Modern wooden nightstand with drawer and open shelf",
		Price:       129.99,
		ImageURL:    "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=500",
		Rating:      4.8,
		ReviewCount: 156,
		InStock:     true,
		Category:    "home",
	},
	{
		ID:          "29",
		Name:        "Tablet",
		Description: "10-inch tablet with 128GB storage and stylus support",
		Price:       399.99,
		ImageURL:    "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=500",
		Rating:      4.6,
		ReviewCount: 489,
		InStock:     true,
		Category:    "electronics",
	},
	{
		ID:          "30",
		Name:        "Formal Shirt",
		Description: "Slim-fit dress shirt in premium cotton blend",
		Price:       54.99,
		ImageURL:    "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=500",
		Rating:      4.5,
		ReviewCount: 312,
		InStock:     true,
		Category:    "clothing",
	},
	{
		ID:          "31",
		Name:        "Silver Necklace",
		Description: "Sterling silver pendant necklace with delicate chain",
		Price:       89.99,
		ImageURL:    "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=500",
		Rating:      4.9,
		ReviewCount: 287,
		InStock:     true,
		Category:    "accessories",
	},
	{
		ID:          "32",
		Name:        "Floor Mirror",
		Description: "Full-length standing mirror with wooden frame",
		Price:       159.99,
		ImageURL:    "https://images.unsplash.com/photo-1618220179428-22790b461013?w=500",
		Rating:      4.7,
		ReviewCount: 198,
		InStock:     true,
		Category:    "home",
	},
}
