package api

import "context"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// RegisterResult is the signup response: the account is created inactive and
// the user confirms it through the activation link.
type RegisterResult struct {
	Details        string `json:"details"`
	ActivationLink string `json:"activation_link"`
}

type ProfileUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
}

type UserUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var u User
	err := c.post(ctx, "/api/users/login/", "", LoginRequest{Username: email, Password: password}, &u)
	return u, err
}

func (c *Client) Register(ctx context.Context, in RegisterRequest) (RegisterResult, error) {
	var out RegisterResult
	err := c.post(ctx, "/api/users/register/", "", in, &out)
	return out, err
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]User, error) {
	var out []User
	err := c.get(ctx, "/api/users/getallusers/", token, &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, token string, id int) (User, error) {
	var out User
	err := c.get(ctx, pathf("/api/users/%d/", id), token, &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, token string, id int, in UserUpdateRequest) (User, error) {
	var out User
	err := c.put(ctx, pathf("/api/users/update/%d/", id), token, in, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.delete(ctx, pathf("/api/users/delete/%d/", id), token)
}

func (c *Client) UpdateProfile(ctx context.Context, token string, in ProfileUpdateRequest) (User, error) {
	var out User
	err := c.put(ctx, "/api/users/profile/update/", token, in, &out)
	return out, err
}
