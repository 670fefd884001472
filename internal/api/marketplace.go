package api

import (
	"context"
	"net/http"
	"net/url"

	"eventhub-client/internal/models"
)

// MarketplaceListings returns the active resale listings.
func (c *Client) MarketplaceListings(ctx context.Context) ([]models.MarketplaceListing, error) {
	var out []models.MarketplaceListing
	if err := c.do(ctx, http.MethodGet, "/api/marketplace", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyListings returns the caller's own resale listings.
func (c *Client) MyListings(ctx context.Context) ([]models.MarketplaceListing, error) {
	var out []models.MarketplaceListing
	if err := c.do(ctx, http.MethodGet, "/api/marketplace/seller", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateListing puts one of the caller's tickets up for resale.
func (c *Client) CreateListing(ctx context.Context, req models.ListingRequest) (*models.MarketplaceListing, error) {
	var out models.MarketplaceListing
	if err := c.do(ctx, http.MethodPost, "/api/marketplace", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BuyListing purchases a resale listing; the ticket is reissued to the
// buyer by the backend.
func (c *Client) BuyListing(ctx context.Context, listingID string) (*models.MarketplaceListing, error) {
	var out models.MarketplaceListing
	path := "/api/marketplace/" + url.PathEscape(listingID) + "/buy"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
