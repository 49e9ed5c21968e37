package catalog

import "github.com/umarsaeed-beep/clothing-project/internal/domain"

// FallbackProducts is the catalog the client uses when the backend is
// unreachable. Kept in sync with products.json by hand.
func FallbackProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Casual Shirt", Tagline: "Everyday comfort", Price: 3299,
			Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=1000&q=60",
			Sizes: []string{"S", "M", "L"}, Colors: []string{"White", "Black"}, Category: "t-shirts", Newest: true},
		{ID: 2, Title: "Blue Jeans", Tagline: "Classic blue denim", Price: 4599, CompareAt: 5999,
			Image: "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?auto=format&fit=crop&w=1000&q=60",
			Sizes: []string{"M", "L", "XL"}, Colors: []string{"Blue"}, Category: "jeans"},
		{ID: 3, Title: "Sport Shoes", Tagline: "Run. Jump. Chill.", Price: 6999,
			Image: "https://images.unsplash.com/photo-1528701800489-20be0e92f37e?auto=format&fit=crop&w=1000&q=60",
			Sizes: []string{"8", "9", "10"}, Colors: []string{"Black"}, Category: "shoes"},
		{ID: 4, Title: "Cozy Hoodie", Tagline: "Hood up, world off", Price: 5799, CompareAt: 6999,
			Image: "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?auto=format&fit=crop&w=1000&q=60",
			Sizes: []string{"M", "L", "XL"}, Colors: []string{"Grey", "Black"}, Category: "hoodies", Newest: true},
		{ID: 5, Title: "Denim Jacket", Tagline: "Rough & ready", Price: 8999,
			Image: "https://images.unsplash.com/photo-1516826957135-700dedea698c?auto=format&fit=crop&w=1000&q=60",
			Sizes: []string{"M", "L"}, Colors: []string{"Blue"}, Category: "jackets"},
		{ID: 6, Title: "Snapback Cap", Tagline: "Finish the look", Price: 1299,
			Image: "https://images.unsplash.com/photo-1519741491664-9e6b69d0b20a?auto=format&fit=crop&w=1000&q=60",
			Sizes: []string{"One Size"}, Colors: []string{"Black", "White"}, Category: "accessories"},
	}
}
