package remote

import (
	"context"
	"net/http"
	"strconv"
)

// The city, location and skill services all answer with the same
// double-wrapped envelope: {data: {data: {…record…}}}.

// CityRecord is a resolved city.
type CityRecord struct {
	Name string `json:"name"`
}

// CountryRecord is the innermost level of a location lookup.
type CountryRecord struct {
	Name string `json:"name"`
}

// StateRecord nests the country a state belongs to.
type StateRecord struct {
	Name    string        `json:"name"`
	Country CountryRecord `json:"country"`
}

// LocationRecord is a resolved city with its state and country — three
// levels of nesting the orchestrator flattens for list views.
type LocationRecord struct {
	Name  string      `json:"name"`
	State StateRecord `json:"state"`
}

// SkillRecord is a resolved skill.
type SkillRecord struct {
	Name string `json:"name"`
}

// CityClient resolves city ids to city records.
type CityClient struct {
	baseURL string
	client  *http.Client
}

// NewCityClient constructs a client for the city service at baseURL.
func NewCityClient(baseURL string) *CityClient {
	return &CityClient{baseURL: baseURL, client: newHTTPClient()}
}

// Resolve fetches the city record for id.
func (c *CityClient) Resolve(ctx context.Context, id int64) (*CityRecord, error) {
	var envelope struct {
		Data struct {
			Data CityRecord `json:"data"`
		} `json:"data"`
	}
	url := joinURL(c.baseURL, "city", strconv.FormatInt(id, 10))
	if err := getJSON(ctx, c.client, url, "", &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Data, nil
}

// LocationClient resolves city ids to full location records.
type LocationClient struct {
	baseURL string
	client  *http.Client
}

// NewLocationClient constructs a client for the location endpoint at baseURL.
func NewLocationClient(baseURL string) *LocationClient {
	return &LocationClient{baseURL: baseURL, client: newHTTPClient()}
}

// Resolve fetches the location record for id.
func (c *LocationClient) Resolve(ctx context.Context, id int64) (*LocationRecord, error) {
	var envelope struct {
		Data struct {
			Data LocationRecord `json:"data"`
		} `json:"data"`
	}
	url := joinURL(c.baseURL, "location", strconv.FormatInt(id, 10))
	if err := getJSON(ctx, c.client, url, "", &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Data, nil
}

// SkillClient resolves skill ids to skill records.
type SkillClient struct {
	baseURL string
	client  *http.Client
}

// NewSkillClient constructs a client for the skill service at baseURL.
func NewSkillClient(baseURL string) *SkillClient {
	return &SkillClient{baseURL: baseURL, client: newHTTPClient()}
}

// Resolve fetches the skill record for id.
func (c *SkillClient) Resolve(ctx context.Context, id int64) (*SkillRecord, error) {
	var envelope struct {
		Data struct {
			Data SkillRecord `json:"data"`
		} `json:"data"`
	}
	url := joinURL(c.baseURL, "skill", strconv.FormatInt(id, 10))
	if err := getJSON(ctx, c.client, url, "", &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Data, nil
}
