package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub-client/internal/models"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode([]models.Event{})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithStaticToken("token-123"))
	_, err := client.ListEvents(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClientOmitsEmptyToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Event{})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientStructuredError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Ticket already checked in"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetTicket(context.Background(), "TK-1")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Ticket already checked in", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "409")
}

func TestClientPlainTextError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not today", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetEvent(context.Background(), 1)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "not today", apiErr.Message)
}

func TestClientEmptyErrorBodyFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetEvent(context.Background(), 1)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), apiErr.Message)
}

func TestSearchEventsQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/search", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(models.EventPage{Content: []models.Event{{ID: 1}}, TotalElements: 1})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	page, err := client.SearchEvents(context.Background(), EventSearchParams{
		Query:  "jazz",
		City:   "Hanoi",
		Status: models.EventPublished,
		Page:   2,
		Size:   50,
	})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)

	assert.Equal(t, "jazz", gotQuery.Get("query"))
	assert.Equal(t, "Hanoi", gotQuery.Get("city"))
	assert.Equal(t, "PUBLISHED", gotQuery.Get("status"))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "50", gotQuery.Get("size"))
	assert.Empty(t, gotQuery.Get("category"))
}

func TestCreateOrderPostsJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user-1", req.UserID)
		require.Len(t, req.Items, 1)
		assert.Equal(t, 2, req.Items[0].Quantity)

		json.NewEncoder(w).Encode(models.OrderResponse{ID: 42, Status: models.OrderPending})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	order, err := client.CreateOrder(context.Background(), &models.OrderRequest{
		UserID:  "user-1",
		EventID: 1,
		Items:   []models.OrderItemRequest{{TicketTypeID: 5, ShowtimeID: 10, Quantity: 2, Price: 2500}},
	})
	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.Equal(t, models.OrderPending, order.Status)
}

func TestScanTicketRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tickets/TK-1/scan", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Gate 1-A", q.Get("gate"))
		assert.Equal(t, "device-7", q.Get("deviceId"))
		assert.Equal(t, "staff-1", q.Get("staffId"))
		assert.False(t, q.Has("ticketCode"))
		json.NewEncoder(w).Encode(models.TicketResponse{TicketCode: "TK-1", Status: models.TicketCheckedIn})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ticket, err := client.ScanTicket(context.Background(), "TK-1", "Gate 1-A", "device-7", "staff-1")
	require.NoError(t, err)
	assert.Equal(t, models.TicketCheckedIn, ticket.Status)
}

func TestScanTicketOmitsEmptyQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tickets/TK-2/scan", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode(models.TicketResponse{TicketCode: "TK-2", Status: models.TicketCheckedIn})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ScanTicket(context.Background(), "TK-2", "", "", "")
	require.NoError(t, err)
}

func TestOrderTicketsRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tickets/order/42", r.URL.Path)
		json.NewEncoder(w).Encode([]models.TicketResponse{
			{TicketCode: "TK-1", OrderID: 42},
			{TicketCode: "TK-2", OrderID: 42},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	tickets, err := client.OrderTickets(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "TK-1", tickets[0].TicketCode)
}

func TestPaymentReturnForwardsParamsVerbatim(t *testing.T) {
	var gotRaw string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/vnpay_return", r.URL.Path)
		gotRaw = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	params := url.Values{}
	params.Set("vnp_TxnRef", "42")
	params.Set("vnp_ResponseCode", "00")
	params.Set("vnp_SecureHash", "abcdef")

	client := NewClient(server.URL)
	require.NoError(t, client.PaymentReturn(context.Background(), params))

	got, err := url.ParseQuery(gotRaw)
	require.NoError(t, err)
	assert.Equal(t, params, got)
}

func TestInitiatePayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/42/initiate-payment", r.URL.Path)
		assert.Equal(t, "VNPAY", r.URL.Query().Get("paymentMethod"))
		json.NewEncoder(w).Encode(models.PaymentTransaction{
			OrderID:    42,
			Status:     models.PaymentPending,
			PaymentURL: "https://gateway.example/pay/42",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	tx, err := client.InitiatePayment(context.Background(), 42, "VNPAY")
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.example/pay/42", tx.PaymentURL)
}

func TestRequestRefundPostsJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/payments/refund", r.URL.Path)

		var req RefundRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 42, req.OrderID)
		assert.Equal(t, "event cancelled", req.Reason)

		json.NewEncoder(w).Encode(models.PaymentTransaction{OrderID: 42, Status: models.PaymentRefunded})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	tx, err := client.RequestRefund(context.Background(), RefundRequest{OrderID: 42, Reason: "event cancelled"})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, tx.Status)
}

func TestSignupPostsJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)

		var req models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Jane Doe", req.FullName)
		assert.Equal(t, "jane@example.com", req.Email)

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Signup(context.Background(), models.SignupRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Event{})
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")
	_, err := client.ListEvents(context.Background())
	assert.NoError(t, err)
}
