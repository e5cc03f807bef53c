package source

// Item is a single fetchable entry produced by expanding a resolved locator.
type Item struct {
	// Locator is the absolute, directly-fetchable address of the item.
	Locator string `json:"locator"`
	// Ordinal is the 1-based position within the parent collection,
	// contiguous and strictly increasing in provider order.
	Ordinal int `json:"ordinal"`
}

// Listing is the ordered expansion of a resolved locator.
type Listing struct {
	Title        string `json:"title"`
	IsCollection bool   `json:"is_collection"`
	Items        []Item `json:"items"`
}
