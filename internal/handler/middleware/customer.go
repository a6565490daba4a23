package middleware

import (
	"net/http"
	"strings"

	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Authentication lives in the booking orchestrator in front of this service;
// it forwards the authenticated customer in this header.
const (
	CustomerIDHeader = "X-Customer-ID"
	// BookingIDHeader correlates calls made on behalf of one booking.
	BookingIDHeader = "X-Booking-ID"
)

const ctxCustomerIDKey = "customer_id"

var ErrMissingCustomer = errs.Validation("customer id header is required")

// CustomerContext stores the forwarded customer id when present. A malformed id
// is rejected; a missing one is not.
func CustomerContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(CustomerIDHeader))
		if raw == "" {
			c.Next()
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer id", nil)
			return
		}
		c.Set(ctxCustomerIDKey, id)
		c.Next()
	}
}

// RequireCustomer must run after CustomerContext.
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCustomerID(c); !ok {
			httperr.AbortWithError(c, http.StatusBadRequest, ErrMissingCustomer, "Customer id required", nil)
			return
		}
		c.Next()
	}
}

func GetCustomerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxCustomerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// OptionalCustomerID returns nil when no customer was forwarded.
func OptionalCustomerID(c *gin.Context) *uuid.UUID {
	id, ok := GetCustomerID(c)
	if !ok {
		return nil
	}
	return &id
}
