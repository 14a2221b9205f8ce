// Package apitest is an in-process stand-in for the storefront REST API,
// faithful to the shapes the client depends on: bearer-token auth, admin
// gating, and {"detail": ...} error bodies on every non-2xx response.
package apitest

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/priyanka857/Major-Project-1/internal/api"
)

type userRecord struct {
	api.User
	passwordHash []byte
	active       bool
}

// Server holds the fake catalog, user base and order book behind a mutex.
type Server struct {
	secret []byte

	mu       sync.Mutex
	users    map[int]*userRecord
	products map[int]*api.Product
	orders   map[int]*api.Order
	nextID   int

	engine *gin.Engine
}

func NewServer(secret string) *Server {
	s := &Server{
		secret:   []byte(secret),
		users:    make(map[int]*userRecord),
		products: make(map[int]*api.Product),
		orders:   make(map[int]*api.Order),
		nextID:   1,
	}
	s.engine = s.routes()
	return s
}

// Handler exposes the router for httptest.NewServer.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/products/", s.listProducts)
	r.GET("/api/product/:id/", s.getProduct)
	r.POST("/api/products/create/", s.auth(true), s.createProduct)
	r.PUT("/api/products/update/:id/", s.auth(true), s.updateProduct)
	r.DELETE("/api/products/delete/:id/", s.auth(true), s.deleteProduct)

	r.POST("/api/users/login/", s.login)
	r.POST("/api/users/register/", s.register)
	r.GET("/api/users/getallusers/", s.auth(true), s.listUsers)
	r.PUT("/api/users/profile/update/", s.auth(false), s.updateProfile)
	r.PUT("/api/users/update/:id/", s.auth(true), s.updateUser)
	r.DELETE("/api/users/delete/:id/", s.auth(true), s.deleteUser)
	r.GET("/api/users/:id/", s.auth(false), s.getUser)

	r.POST("/api/orders/add/", s.auth(false), s.addOrder)
	r.GET("/api/orders/myorders/", s.auth(false), s.myOrders)
	r.GET("/api/orders/", s.auth(true), s.listOrders)
	r.GET("/api/orders/:id/", s.auth(false), s.getOrder)
	r.PUT("/api/orders/:id/deliver/", s.auth(true), s.deliverOrder)

	return r
}

func detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

// SeedUser registers an active account and returns its record.
func (s *Server) SeedUser(first, last, email, password string, admin bool) api.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	u := &userRecord{
		User: api.User{
			ID: id, AltID: id,
			Username:  email,
			Email:     email,
			FirstName: first,
			LastName:  last,
			IsAdmin:   admin,
		},
		passwordHash: hash,
		active:       true,
	}
	s.users[id] = u
	return u.User
}

// SeedProduct adds a catalog entry and returns it.
func (s *Server) SeedProduct(name string, price float64, stock int) api.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	p := &api.Product{
		ID:           id,
		Name:         name,
		Image:        fmt.Sprintf("/images/%d.jpg", id),
		Brand:        "Acme",
		Category:     "General",
		Description:  name,
		Price:        api.Price(price),
		CountInStock: stock,
	}
	s.products[id] = p
	return *p
}

// Product returns a copy of the stored record, for stock assertions.
func (s *Server) Product(id int) (api.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return api.Product{}, false
	}
	return *p, true
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		detail(c, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}
