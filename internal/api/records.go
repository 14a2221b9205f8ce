package api

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Price tolerates the API's two encodings of money: DRF decimals arrive as
// strings ("129.00"), hand-built payloads as numbers.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*p = Price(f)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// User is the record returned by the login, profile and admin user endpoints.
// The serializer emits the numeric id under both "id" and "_id"; token is only
// present on login and profile-update responses.
type User struct {
	ID        int    `json:"id"`
	AltID     int    `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"isAdmin"`
	Token     string `json:"token,omitempty"`
}

type Product struct {
	ID           int    `json:"_id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Brand        string `json:"brand"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Rating       Price  `json:"rating"`
	NumReviews   int    `json:"numReviews"`
	Price        Price  `json:"price"`
	CountInStock int    `json:"countInStock"`
}

type OrderItem struct {
	Product int    `json:"product"`
	Name    string `json:"name"`
	Qty     int    `json:"qty"`
	Price   Price  `json:"price"`
	Image   string `json:"image"`
}

type OrderShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type OrderUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Order struct {
	ID              int                   `json:"id"`
	User            OrderUser             `json:"user"`
	OrderItems      []OrderItem           `json:"orderItems"`
	ShippingAddress *OrderShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	TaxPrice        Price                 `json:"taxPrice"`
	ShippingPrice   Price                 `json:"shippingPrice"`
	TotalPrice      Price                 `json:"totalPrice"`
	IsPaid          bool                  `json:"isPaid"`
	IsDelivered     bool                  `json:"isDelivered"`
	DeliveredAt     string                `json:"deliveredAt,omitempty"`
	CreatedAt       string                `json:"createdAt,omitempty"`
}
