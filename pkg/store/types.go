package store

// List represents one page of a collection response together with the
// pagination totals the server reports in headers.
type List[T any] struct {
	Items []T      `json:"items" yaml:"items"`
	Meta  ListMeta `json:"meta"  yaml:"meta"`
}

// ListMeta carries the X-WP-Total / X-WP-TotalPages header values.
type ListMeta struct {
	Total      int `json:"total"       yaml:"total"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// MetaData is an arbitrary key/value annotation attached to a resource.
type MetaData struct {
	ID    int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Key   string `json:"key"          yaml:"key"`
	Value any    `json:"value"        yaml:"value"`
}

// Image represents a resource image.
type Image struct {
	ID   *int64  `json:"id,omitempty"   yaml:"id,omitempty"`
	Src  string  `json:"src"            yaml:"src"`
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Alt  *string `json:"alt,omitempty"  yaml:"alt,omitempty"`
}

// Address represents a billing or shipping address.
type Address struct {
	FirstName *string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"  yaml:"last_name,omitempty"`
	Company   *string `json:"company,omitempty"    yaml:"company,omitempty"`
	Address1  *string `json:"address_1,omitempty"  yaml:"address_1,omitempty"`
	Address2  *string `json:"address_2,omitempty"  yaml:"address_2,omitempty"`
	City      *string `json:"city,omitempty"       yaml:"city,omitempty"`
	State     *string `json:"state,omitempty"      yaml:"state,omitempty"`
	Postcode  *string `json:"postcode,omitempty"   yaml:"postcode,omitempty"`
	Country   *string `json:"country,omitempty"    yaml:"country,omitempty"`
	Email     *string `json:"email,omitempty"      yaml:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"      yaml:"phone,omitempty"`
}

// Ptr returns a pointer to v. Optional model fields are pointer-typed so the
// codec can distinguish "absent" from "zero"; Ptr keeps literals short.
func Ptr[T any](v T) *T {
	return &v
}
