package subscribe

import (
	"time"

	"github.com/petfit/booking-service/internal/domain"
	subscribeUseCase "github.com/petfit/booking-service/internal/usecase/subscribe"
)

// SubscribeRequest HTTP request model
type SubscribeRequest struct {
	SubscriptionID int64 `json:"subscriptionId"`
}

// SubscriptionBookingResponse HTTP response model
type SubscriptionBookingResponse struct {
	ID             int64  `json:"id"`
	SubscriptionID int64  `json:"subscriptionId"`
	CustomerID     int64  `json:"customerId"`
	Status         string `json:"status"`

	SubscriptionName string  `json:"subscriptionName"`
	Price            float64 `json:"price"`
	StartDate        string  `json:"startDate"`
	EndDate          *string `json:"endDate,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *subscribeUseCase.Response) *SubscriptionBookingResponse {
	result := &SubscriptionBookingResponse{
		ID:               resp.ID,
		SubscriptionID:   resp.SubscriptionID,
		CustomerID:       resp.CustomerID,
		Status:           resp.Status,
		SubscriptionName: resp.SubscriptionName,
		Price:            resp.Price,
		StartDate:        resp.StartDate.Format(domain.DateFormat),
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.EndDate != nil {
		end := resp.EndDate.Format(domain.DateFormat)
		result.EndDate = &end
	}

	return result
}
