package entity

// DefaultLogo is the placeholder logo assigned to a business until its owner
// uploads one.
const DefaultLogo = "default.jpg"

// Business is the storefront owned by a user. Every user has exactly one
// business, created explicitly during registration in the same transaction
// as the user record.
type Business struct {
	ID          int64
	Name        string // At most 50 characters. Defaults to the owner's username.
	City        string // Defaults to "Unspecified".
	Region      string // Defaults to "Unspecified".
	Description string
	Logo        string // Stored filename of the uploaded logo.
	OwnerID     int64  // References User.ID.

	// Products are loaded with the business on detail reads.
	Products []*Product
}
