package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type PlaneService struct {
	c *Client
}

func NewPlaneService(c *Client) *PlaneService {
	return &PlaneService{c: c}
}

func (s *PlaneService) Create(ctx context.Context, req CreatePlaneRequest) (*Plane, error) {
	var plane Plane
	err := s.c.do(ctx, http.MethodPost, "/planes", req, &plane, "Failed to create plane")
	if err != nil {
		return nil, err
	}
	return &plane, nil
}

func (s *PlaneService) All(ctx context.Context) ([]Plane, error) {
	var planes []Plane
	err := s.c.do(ctx, http.MethodGet, "/planes", nil, &planes, "Failed to get planes")
	if err != nil {
		return nil, err
	}
	return planes, nil
}

func (s *PlaneService) Get(ctx context.Context, id int) (*Plane, error) {
	var plane Plane
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/planes/%d", id), nil, &plane, "Failed to get plane")
	if err != nil {
		return nil, err
	}
	return &plane, nil
}

func (s *PlaneService) GetByTailNumber(ctx context.Context, tailNumber string) (*Plane, error) {
	var plane Plane
	err := s.c.do(ctx, http.MethodGet, "/planes/tail/"+url.PathEscape(tailNumber), nil, &plane, "Failed to get plane by tail number")
	if err != nil {
		return nil, err
	}
	return &plane, nil
}

func (s *PlaneService) Update(ctx context.Context, id int, req UpdatePlaneRequest) (*Plane, error) {
	var plane Plane
	err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/planes/%d", id), req, &plane, "Failed to update plane")
	if err != nil {
		return nil, err
	}
	return &plane, nil
}

// Delete removes a plane. The server cascades the delete to its parts.
func (s *PlaneService) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/planes/%d", id), nil, nil, "Failed to delete plane")
}

func (s *PlaneService) WithParts(ctx context.Context, id int) (*PlaneWithParts, error) {
	var out PlaneWithParts
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/planes/%d/with-parts", id), nil, &out, "Failed to get plane with parts")
	if err != nil {
		return nil, err
	}
	return &out, nil
}
