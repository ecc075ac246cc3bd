package feed

// Shape identifies which of the two JSON payload layouts a feed uses.
// The layouts never mix within one payload.
type Shape int

const (
	// ShapeJSONFeed is {"items": [...]} with ISO-8601 timestamps.
	ShapeJSONFeed Shape = iota
	// ShapeAPI is {"entries": [...]} with epoch-second string timestamps
	// and a type discriminator.
	ShapeAPI
)

// Item is a JSON-Feed item. The items variant has no type concept, so every
// item counts as a post.
type Item struct {
	DatePublished string `json:"date_published"`
}

// Entry is a platform-API entry. Only entries typed "post" count; entries
// without a type field are kept unconditionally.
type Entry struct {
	Date string `json:"date"`
	Type string `json:"type"`
}

// Payload is a fetched feed decoded into one of the two supported layouts.
type Payload struct {
	Shape   Shape
	Items   []Item
	Entries []Entry
}
