package domain

// Service is a bookable catalog entry. Services are read-only through this
// API; the collection is maintained out-of-band.
type Service struct {
	ID    string  `json:"id" bson:"_id,omitempty"`
	Title string  `json:"title" bson:"title"`
	Img   string  `json:"img" bson:"img"`
	Price float64 `json:"price" bson:"price"`
}

// ServiceFromDocument projects a raw store document onto the fixed Service
// field subset. Unknown fields are dropped.
func ServiceFromDocument(doc Document) Service {
	s := Service{ID: doc.ID()}
	s.Title, _ = doc["title"].(string)
	s.Img, _ = doc["img"].(string)
	switch v := doc["price"].(type) {
	case float64:
		s.Price = v
	case int32:
		s.Price = float64(v)
	case int64:
		s.Price = float64(v)
	}
	return s
}
