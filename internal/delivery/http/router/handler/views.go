package handler

import (
	"time"

	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
)

// View models returned to clients. The password hash never leaves the server.

type userView struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Verified bool      `json:"verified"`
	JoinDate time.Time `json:"join_date"`
}

type businessView struct {
	ID          int64          `json:"id"`
	Name        string         `json:"business_name"`
	City        string         `json:"city"`
	Region      string         `json:"region"`
	Description string         `json:"business_description,omitempty"`
	Logo        string         `json:"logo"`
	OwnerID     int64          `json:"owner_id"`
	Products    []*productView `json:"products,omitempty"`
}

type productView struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	OriginalPrice       float64   `json:"original_price"`
	NewPrice            float64   `json:"new_price"`
	PercentageDiscount  float64   `json:"percentage_discount"`
	OfferExpirationDate time.Time `json:"offer_expiration_date"`
	Image               string    `json:"product_image"`
	BusinessID          int64     `json:"business_id"`
}

func toUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	return &userView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Verified: user.Verified,
		JoinDate: user.JoinDate,
	}
}

func toBusinessView(business *entity.Business) *businessView {
	if business == nil {
		return nil
	}

	view := &businessView{
		ID:          business.ID,
		Name:        business.Name,
		City:        business.City,
		Region:      business.Region,
		Description: business.Description,
		Logo:        business.Logo,
		OwnerID:     business.OwnerID,
	}
	for _, product := range business.Products {
		view.Products = append(view.Products, toProductView(product))
	}

	return view
}

func toProductView(product *entity.Product) *productView {
	if product == nil {
		return nil
	}

	return &productView{
		ID:                  product.ID,
		Name:                product.Name,
		Category:            product.Category,
		OriginalPrice:       product.OriginalPrice,
		NewPrice:            product.NewPrice,
		PercentageDiscount:  product.PercentageDiscount,
		OfferExpirationDate: product.OfferExpirationDate,
		Image:               product.Image,
		BusinessID:          product.BusinessID,
	}
}

func toProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}
