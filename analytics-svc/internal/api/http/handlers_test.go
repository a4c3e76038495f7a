package httpapi_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "overcooked-delivery/analytics-svc/internal/api/http"
	"overcooked-delivery/analytics-svc/internal/domain"
	"overcooked-delivery/analytics-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(mockSvc *mocks.AnalyticsInterface) *mux.Router {
	handler := httpapi.NewHandler(mockSvc)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_Routes(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		prepareMocks func(*mocks.AnalyticsInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name: "top today",
			path: "/api/analytics/top-today",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("TopToday", mock.Anything).Return([]domain.DishAnalytics{
					{DishID: 1, DishName: "Margherita Pizza", RestaurantID: 1, Score: 4},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"dish_id":1,"dish_name":"Margherita Pizza","restaurant_id":1,"score":4}]`,
		},
		{
			name: "top today degrades to empty list",
			path: "/api/analytics/top-today",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("TopToday", mock.Anything).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name: "top dishes default limit",
			path: "/api/restaurants/1/top-dishes",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("TopDishes", mock.Anything, 1, 10).Return([]domain.DishAnalytics{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name: "top dishes explicit limit",
			path: "/api/restaurants/2/top-dishes?limit=3",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("TopDishes", mock.Anything, 2, 3).Return([]domain.DishAnalytics{{DishID: 3, RestaurantID: 2, Score: 9}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"dish_id":3`,
		},
		{
			name:         "top dishes bad limit",
			path:         "/api/restaurants/2/top-dishes?limit=abc",
			prepareMocks: func(m *mocks.AnalyticsInterface) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "limit must be a positive integer",
		},
		{
			name: "top dishes store error",
			path: "/api/restaurants/2/top-dishes",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("TopDishes", mock.Anything, 2, 10).Return(nil, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "restaurant analytics",
			path: "/api/restaurants/1/analytics",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("RestaurantStats", mock.Anything, 1).Return(domain.RestaurantStats{
					RestaurantID: 1, OrdersPlaced: 2, Revenue: 1476, AverageRating: 4.5, ReviewCount: 2,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"revenue":1476`,
		},
		{
			name:         "invalid restaurant id",
			path:         "/api/restaurants/abc/analytics",
			prepareMocks: func(m *mocks.AnalyticsInterface) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "invalid restaurant id",
		},
		{
			name: "restaurant analytics error",
			path: "/api/restaurants/1/analytics",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("RestaurantStats", mock.Anything, 1).Return(domain.RestaurantStats{}, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "failed to fetch analytics",
		},
		{
			name:         "health",
			path:         "/health",
			prepareMocks: func(m *mocks.AnalyticsInterface) {},
			expectedCode: http.StatusOK,
			expectedBody: `"service":"analytics-svc"`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewAnalyticsInterface(t)
			testCase.prepareMocks(mockSvc)
			router := setupTestRouter(mockSvc)

			req := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.expectedCode, rr.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), testCase.expectedBody)
			}
		})
	}
}
