package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/denmor86/ya-pickupdesk/internal/client/mocks"
	"github.com/denmor86/ya-pickupdesk/internal/config"
	"github.com/denmor86/ya-pickupdesk/internal/logger"
	"github.com/denmor86/ya-pickupdesk/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const testBaseURL = "http://shop.local"

func newResponse(code int, body string) *http.Response {
	return &http.Response{
		Status:        http.StatusText(code),
		StatusCode:    code,
		Body:          io.NopCloser(bytes.NewBufferString(body)),
		ContentLength: int64(len(body)),
		Header:        make(http.Header),
	}
}

func initLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel, nil); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}
}

func TestLookupByToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	initLogger(t)

	orderJSON := `{"success":true,"order":{
		"orderNumber":1024,
		"userName":"Ivan Petrov",
		"userPhone":"+79991234567",
		"finalAmount":1500.50,
		"status":"ready_for_pickup",
		"deliveryType":"pickup",
		"items":[
			{"product":{"name":"Pizza"},"quantity":2,"price":500.25},
			{"product":null,"quantity":1,"price":"500"}
		]}}`

	testCases := []struct {
		TestName       string
		SetupMocks     func()
		ExpectedOrder  *models.OrderSnapshot
		ExpectedError  error
		ExpectedTarget interface{}
	}{
		{
			TestName: "Success. Order found #1",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					if req.Method != http.MethodPost {
						t.Errorf("Expected method POST, got: '%v'", req.Method)
					}
					if req.URL.String() != testBaseURL+"/api/qrcode/info-by-token" {
						t.Errorf("Unexpected URL: '%v'", req.URL)
					}
					if req.Header.Get("Content-Type") != "application/json" {
						t.Errorf("Unexpected content type: '%v'", req.Header.Get("Content-Type"))
					}
					body, _ := io.ReadAll(req.Body)
					if string(body) != `{"token":"abc1234567"}` {
						t.Errorf("Unexpected body: '%s'", body)
					}
					return newResponse(http.StatusOK, orderJSON), nil
				})
			},
			ExpectedOrder: &models.OrderSnapshot{
				OrderNumber:   "1024",
				CustomerName:  "Ivan Petrov",
				CustomerPhone: "+79991234567",
				FinalAmount:   decimal.RequireFromString("1500.50"),
				Status:        models.OrderStatusReadyForPickup,
				DeliveryType:  models.DeliveryTypePickup,
				Items: []models.OrderItem{
					{ProductName: "Pizza", Quantity: 2, UnitPrice: decimal.RequireFromString("500.25")},
					{ProductName: "Unknown product", Quantity: 1, UnitPrice: decimal.NewFromInt(500)},
				},
			},
		},
		{
			TestName: "Success. Missing fields get defaults #2",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusOK, `{"success":true,"order":{}}`), nil)
			},
			ExpectedOrder: &models.OrderSnapshot{
				OrderNumber:  "N/A",
				CustomerName: "N/A",
				Status:       models.OrderStatusUnknown,
				Items:        []models.OrderItem{},
			},
		},
		{
			TestName: "Error. API rejected #3",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusOK, `{"success":false,"message":"x"}`), nil)
			},
			ExpectedTarget: &APIRejectedError{Message: "x"},
		},
		{
			TestName: "Error. HTTP status #4",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusInternalServerError, ""), nil)
			},
			ExpectedTarget: &HTTPError{StatusCode: http.StatusInternalServerError},
		},
		{
			TestName: "Error. Not found status #5",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusNotFound, "not found"), nil)
			},
			ExpectedTarget: &HTTPError{StatusCode: http.StatusNotFound},
		},
		{
			TestName: "Error. Body is not JSON #6",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusOK, "<html>"), nil)
			},
			ExpectedError: ErrMalformedResponse,
		},
		{
			TestName: "Error. Order missing #7",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusOK, `{"success":true}`), nil)
			},
			ExpectedError: ErrMalformedResponse,
		},
		{
			TestName: "Error. Transport failure #8",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			ExpectedTarget: &NetworkError{},
		},
		{
			TestName: "Error. Wrong item quantity type #9",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusOK,
					`{"success":true,"order":{"items":[{"quantity":"many"}]}}`), nil)
			},
			ExpectedError: ErrMalformedResponse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			client := NewClient(mockHTTPClient, nil)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			order, err := client.LookupByToken(ctx, testBaseURL, "abc1234567")

			switch {
			case tc.ExpectedError != nil:
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
				}
			case tc.ExpectedTarget != nil:
				checkErrorTarget(t, err, tc.ExpectedTarget)
			case err != nil:
				t.Errorf("Expected no error, got: '%v'", err)
			}
			if diff := cmp.Diff(tc.ExpectedOrder, order); diff != "" {
				t.Errorf("order mismatch:\n %s", diff)
			}
		})
	}
}

// checkErrorTarget сверяет тип ошибки и содержимое типизированной ошибки
func checkErrorTarget(t *testing.T, err error, target interface{}) {
	t.Helper()
	switch expected := target.(type) {
	case *APIRejectedError:
		var got *APIRejectedError
		if !errors.As(err, &got) {
			t.Fatalf("Expected APIRejectedError, got: '%v'", err)
		}
		if got.Message != expected.Message {
			t.Errorf("Expected message: '%v', got: '%v'", expected.Message, got.Message)
		}
	case *HTTPError:
		var got *HTTPError
		if !errors.As(err, &got) {
			t.Fatalf("Expected HTTPError, got: '%v'", err)
		}
		if got.StatusCode != expected.StatusCode {
			t.Errorf("Expected status: '%v', got: '%v'", expected.StatusCode, got.StatusCode)
		}
	case *NetworkError:
		var got *NetworkError
		if !errors.As(err, &got) {
			t.Fatalf("Expected NetworkError, got: '%v'", err)
		}
	default:
		t.Fatalf("unsupported target %T", target)
	}
}

func TestIssueByToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	initLogger(t)

	testCases := []struct {
		TestName       string
		SetupMocks     func()
		ExpectedResult bool
		ExpectedError  error
		ExpectedTarget interface{}
	}{
		{
			TestName: "Success. Issued #1",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					if req.URL.String() != testBaseURL+"/api/qrcode/validate-by-token" {
						t.Errorf("Unexpected URL: '%v'", req.URL)
					}
					return newResponse(http.StatusOK, `{"success":true}`), nil
				})
			},
			ExpectedResult: true,
		},
		{
			TestName: "Success. Rejected is not an error #2",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusOK, `{"success":false,"message":"already issued"}`), nil)
			},
			ExpectedResult: false,
		},
		{
			TestName: "Error. HTTP status #3",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusBadGateway, ""), nil)
			},
			ExpectedTarget: &HTTPError{StatusCode: http.StatusBadGateway},
		},
		{
			TestName: "Error. Malformed body #4",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusOK, `{"success":"yes"}`), nil)
			},
			ExpectedError: ErrMalformedResponse,
		},
		{
			TestName: "Error. Transport failure #5",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(nil, context.DeadlineExceeded)
			},
			ExpectedTarget: &NetworkError{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			client := NewClient(mockHTTPClient, nil)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			ok, err := client.IssueByToken(ctx, testBaseURL+"/", "abc1234567")

			switch {
			case tc.ExpectedError != nil:
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
				}
			case tc.ExpectedTarget != nil:
				checkErrorTarget(t, err, tc.ExpectedTarget)
			case err != nil:
				t.Errorf("Expected no error, got: '%v'", err)
			}
			if ok != tc.ExpectedResult {
				t.Errorf("Expected result: '%v', got: '%v'", tc.ExpectedResult, ok)
			}
		})
	}
}

func TestBreaker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	initLogger(t)

	// после двух сетевых ошибок подряд сервис не вызывается
	mockHTTPClient.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused")).Times(2)

	client := NewClient(mockHTTPClient, NewBreaker("order-service", 2, time.Minute))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := client.LookupByToken(ctx, testBaseURL, "abc1234567"); err == nil {
			t.Fatalf("Expected error on call %d", i)
		}
	}

	_, err := client.IssueByToken(ctx, testBaseURL, "abc1234567")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Expected NetworkError, got: '%v'", err)
	}
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("Expected ErrServiceUnavailable, got: '%v'", err)
	}
}

func TestIsServiceAlive(t *testing.T) {
	testCases := []struct {
		TestName string
		Err      error
		Expected bool
	}{
		{TestName: "nil #1", Err: nil, Expected: true},
		{TestName: "network #2", Err: &NetworkError{Err: errors.New("refused")}, Expected: false},
		{TestName: "canceled #3", Err: &NetworkError{Err: context.Canceled}, Expected: true},
		{TestName: "server error #4", Err: &HTTPError{StatusCode: 503}, Expected: false},
		{TestName: "client error #5", Err: &HTTPError{StatusCode: 404}, Expected: true},
		{TestName: "rejected #6", Err: &APIRejectedError{Message: "x"}, Expected: true},
		{TestName: "malformed #7", Err: ErrMalformedResponse, Expected: true},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := IsServiceAlive(tc.Err); got != tc.Expected {
				t.Errorf("Expected: '%v', got: '%v'", tc.Expected, got)
			}
		})
	}
}

func TestProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	initLogger(t)

	testCases := []struct {
		TestName       string
		SetupMocks     func()
		ExpectedStatus int
		ExpectedError  bool
	}{
		{
			TestName: "Success. Method not allowed still reachable #1",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					if req.Method != http.MethodGet {
						t.Errorf("Expected method GET, got: '%v'", req.Method)
					}
					return newResponse(http.StatusMethodNotAllowed, ""), nil
				})
			},
			ExpectedStatus: http.StatusMethodNotAllowed,
		},
		{
			TestName: "Error. Server error #2",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusServiceUnavailable, ""), nil)
			},
			ExpectedStatus: http.StatusServiceUnavailable,
			ExpectedError:  true,
		},
		{
			TestName: "Error. Unreachable #3",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(nil, errors.New("no route to host"))
			},
			ExpectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			client := NewClient(mockHTTPClient, nil)
			status, err := client.Probe(context.Background(), testBaseURL)

			if status != tc.ExpectedStatus {
				t.Errorf("Expected status: '%v', got: '%v'", tc.ExpectedStatus, status)
			}
			if tc.ExpectedError != (err != nil) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}
