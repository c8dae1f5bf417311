package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/goliatone/go-tasks/auth"
)

type apiError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

type authResponse struct {
	Token string          `json:"token"`
	User  auth.PublicUser `json:"user"`
}

type apiClient struct {
	base string
	http *http.Client
}

func newAPIClient(base string) *apiClient {
	return &apiClient{
		base: base,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *apiClient) post(path string, body any, token string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		apiErr := &apiError{Status: res.StatusCode, Message: "request failed"}
		_ = json.NewDecoder(res.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *apiClient) Signup(name, email, password, userType string) (*authResponse, error) {
	out := &authResponse{}
	err := c.post("/api/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"userType": userType,
	}, "", out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) Login(email, password string) (*authResponse, error) {
	out := &authResponse{}
	err := c.post("/api/login", map[string]string{
		"email":    email,
		"password": password,
	}, "", out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) AddTodo(token, title string) (string, error) {
	out := map[string]string{}
	err := c.post("/api/add-todo", map[string]string{
		"title": title,
	}, token, &out)
	if err != nil {
		return "", err
	}
	return out["message"], nil
}
