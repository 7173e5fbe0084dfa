package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	ConsumerID uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

var ErrReviewNotFound = errors.New("review not found")
