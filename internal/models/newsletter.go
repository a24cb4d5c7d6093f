package models

import (
	"time"

	"github.com/google/uuid"
)

type SubscriberStatus string

const (
	SubscriberStatusSubscribed SubscriberStatus = "subscribed"
)

type Subscriber struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	Locale    string           `json:"locale"`
	Status    SubscriberStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type SubscribeRequest struct {
	Email  string `json:"email" validate:"required,email,max=254"`
	Locale string `json:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}
