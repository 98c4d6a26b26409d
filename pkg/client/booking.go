package client

import (
	"encoding/json"
	"fmt"
	"net/url"

	"carebook/pkg/model"
)

// Listing mirrors the directory page payload.
type Listing struct {
	Heading    string           `json:"heading"`
	Query      string           `json:"query"`
	CountLabel string           `json:"count_label"`
	Providers  []model.Provider `json:"providers"`
}

type Confirmation struct {
	BookingID       string  `json:"booking_id"`
	ProviderName    string  `json:"provider_name"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	PatientEmail    string  `json:"patient_email"`
	ConsultationFee float64 `json:"consultation_fee"`
}

type BookingResult struct {
	Confirmation Confirmation `json:"confirmation"`
	Notification struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"notification"`
}

type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseUrl string) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

// ListProviders fetches the directory. A nil query keeps the session's
// current search.
func (c *BookingClient) ListProviders(query *string) (*Response, error) {
	path := "/api/v1/providers"
	if query != nil {
		path += "?" + url.Values{"q": {*query}}.Encode()
	}
	return c.httpClient.GET(path)
}

func (c *BookingClient) GetProvider(id string) (*Response, error) {
	return c.httpClient.GET("/api/v1/providers/" + url.PathEscape(id))
}

func (c *BookingClient) SetSearch(query string) (*Response, error) {
	return c.httpClient.PUT("/api/v1/search", map[string]string{"query": query})
}

func (c *BookingClient) Create(providerID string, req model.BookingRequest) (*Response, error) {
	return c.httpClient.POST("/api/v1/providers/"+url.PathEscape(providerID)+"/bookings", req)
}

func (c *BookingClient) CreateRaw(providerID string, rawBody []byte) (*Response, error) {
	return c.httpClient.POSTRaw("/api/v1/providers/"+url.PathEscape(providerID)+"/bookings", rawBody)
}

func (c *BookingClient) GetAll() (*Response, error) {
	return c.httpClient.GET("/api/v1/bookings")
}

func decodeData(resp *Response, target any) error {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return fmt.Errorf("could not decode response wrapper:\n%s\n%w", resp, err)
	}
	if err := json.Unmarshal(wrapper.Data, target); err != nil {
		return fmt.Errorf("could not decode response data:\n%s\n%w", resp, err)
	}
	return nil
}

func (c *BookingClient) DecodeListing(resp *Response) (*Listing, error) {
	var listing Listing
	if err := decodeData(resp, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *BookingClient) DecodeBookingResult(resp *Response) (*BookingResult, error) {
	var result BookingResult
	if err := decodeData(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *BookingClient) DecodeBookings(resp *Response) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := decodeData(resp, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
