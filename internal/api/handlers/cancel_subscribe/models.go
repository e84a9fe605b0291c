package cancel_subscribe

import (
	"time"

	cancelSubscribe "github.com/petfit/booking-service/internal/usecase/cancel_subscribe"
)

// CancelSubscribeRequest HTTP request model
type CancelSubscribeRequest struct {
	BookingID int64 `json:"bookingId"`
}

// CancelSubscribeResponse HTTP response model
type CancelSubscribeResponse struct {
	ID             int64  `json:"id"`
	SubscriptionID int64  `json:"subscriptionId"`
	CustomerID     int64  `json:"customerId"`
	Status         string `json:"status"`
	UpdatedAt      string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelSubscribe.Response) *CancelSubscribeResponse {
	return &CancelSubscribeResponse{
		ID:             resp.ID,
		SubscriptionID: resp.SubscriptionID,
		CustomerID:     resp.CustomerID,
		Status:         resp.Status,
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
