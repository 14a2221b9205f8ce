package apitest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/priyanka857/Major-Project-1/internal/api"
)

func (s *Server) listProducts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]api.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	p, exists := s.products[id]
	s.mu.Unlock()
	if !exists {
		detail(c, http.StatusNotFound, "Product does not exist")
		return
	}
	c.JSON(http.StatusOK, *p)
}

func (s *Server) createProduct(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	p := &api.Product{
		ID:           id,
		Name:         "Sample Name",
		Brand:        "Sample Brand",
		Category:     "Sample Category",
		Description:  "",
		Price:        0,
		CountInStock: 0,
	}
	s.products[id] = p
	c.JSON(http.StatusOK, *p)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in api.ProductUpdateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, exists := s.products[id]
	if !exists {
		detail(c, http.StatusNotFound, "Product does not exist")
		return
	}
	p.Name = in.Name
	p.Price = api.Price(in.Price)
	p.Image = in.Image
	p.Brand = in.Brand
	p.Category = in.Category
	p.Description = in.Description
	p.CountInStock = in.CountInStock
	c.JSON(http.StatusOK, *p)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.products[id]; !exists {
		detail(c, http.StatusNotFound, "Product does not exist")
		return
	}
	delete(s.products, id)
	c.JSON(http.StatusOK, gin.H{"detail": "Product deleted"})
}

func (s *Server) login(c *gin.Context) {
	var in api.LoginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email != in.Username {
			continue
		}
		if !u.active || bcrypt.CompareHashAndPassword(u.passwordHash, []byte(in.Password)) != nil {
			break
		}
		out := u.User
		out.Token = s.issueToken(u.User)
		c.JSON(http.StatusOK, out)
		return
	}
	detail(c, http.StatusUnauthorized, "No active account found with the given credentials")
}

func (s *Server) register(c *gin.Context) {
	var in api.RegisterRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == in.Email {
			detail(c, http.StatusBadRequest, "User with this email already exists")
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.MinCost)
	if err != nil {
		detail(c, http.StatusInternalServerError, "hash failure")
		return
	}

	id := s.nextID
	s.nextID++
	s.users[id] = &userRecord{
		User: api.User{
			ID: id, AltID: id,
			Username:  in.Email,
			Email:     in.Email,
			FirstName: in.FirstName,
			LastName:  in.LastName,
		},
		passwordHash: hash,
		active:       false, // activation link confirms the account
	}

	c.JSON(http.StatusOK, api.RegisterResult{
		Details:        "Check your email to activate your account",
		ActivationLink: fmt.Sprintf("/api/activate/%d/fake-token/", id),
	})
}

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]api.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.User)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	u, exists := s.users[id]
	s.mu.Unlock()
	if !exists {
		detail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, u.User)
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in api.UserUpdateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, exists := s.users[id]
	if !exists {
		detail(c, http.StatusNotFound, "User not found")
		return
	}
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Email = in.Email
	u.Username = in.Email
	u.IsAdmin = in.IsAdmin
	c.JSON(http.StatusOK, u.User)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[id]; !exists {
		detail(c, http.StatusNotFound, "User not found")
		return
	}
	delete(s.users, id)
	c.JSON(http.StatusOK, gin.H{"detail": "User was deleted"})
}

func (s *Server) updateProfile(c *gin.Context) {
	me := currentUser(c)

	var in api.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[me.ID]
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	if in.Email != "" {
		u.Email = in.Email
		u.Username = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.MinCost)
		if err != nil {
			detail(c, http.StatusInternalServerError, "hash failure")
			return
		}
		u.passwordHash = hash
	}

	out := u.User
	out.Token = s.issueToken(u.User)
	c.JSON(http.StatusOK, out)
}

func (s *Server) addOrder(c *gin.Context) {
	me := currentUser(c)

	var in api.OrderCreateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		detail(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if len(in.OrderItems) == 0 {
		detail(c, http.StatusBadRequest, "No order items")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]api.OrderItem, 0, len(in.OrderItems))
	for _, it := range in.OrderItems {
		p, exists := s.products[it.Product]
		if !exists {
			detail(c, http.StatusBadRequest, fmt.Sprintf("Order creation failed: product %d not found", it.Product))
			return
		}
		items = append(items, api.OrderItem{
			Product: p.ID,
			Name:    p.Name,
			Qty:     it.Qty,
			Price:   api.Price(it.Price),
			Image:   p.Image,
		})
		p.CountInStock -= it.Qty
	}

	id := s.nextID
	s.nextID++
	addr := in.ShippingAddress
	o := &api.Order{
		ID:              id,
		User:            api.OrderUser{ID: me.ID, Name: me.FirstName, Email: me.Email},
		OrderItems:      items,
		ShippingAddress: &addr,
		PaymentMethod:   in.PaymentMethod,
		TaxPrice:        api.Price(in.TaxPrice),
		ShippingPrice:   api.Price(in.ShippingPrice),
		TotalPrice:      api.Price(in.TotalPrice),
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	s.orders[id] = o
	c.JSON(http.StatusOK, *o)
}

func (s *Server) getOrder(c *gin.Context) {
	me := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	o, exists := s.orders[id]
	s.mu.Unlock()
	if !exists || (!me.IsAdmin && o.User.ID != me.ID) {
		detail(c, http.StatusNotFound, "Order does not exist")
		return
	}
	c.JSON(http.StatusOK, *o)
}

func (s *Server) myOrders(c *gin.Context) {
	me := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Order, 0)
	for _, o := range s.orders {
		if o.User.ID == me.ID {
			out = append(out, *o)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) listOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) deliverOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o, exists := s.orders[id]
	if !exists {
		detail(c, http.StatusNotFound, "Order does not exist")
		return
	}
	o.IsDelivered = true
	o.DeliveredAt = time.Now().UTC().Format(time.RFC3339)
	c.JSON(http.StatusOK, *o)
}
