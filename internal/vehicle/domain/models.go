package domain

import (
	"errors"
	"time"
)

// Vehicle is a customer's vehicle under service.
type Vehicle struct {
	ID            string    `json:"id"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	VIN           string    `json:"vin"`
	LicensePlate  string    `json:"licensePlate"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail"`
	Odometer      int       `json:"odometer"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateRequest struct {
	Make          string
	Model         string
	Year          int
	VIN           string
	LicensePlate  string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Odometer      int
}

// UpdateRequest patches an existing vehicle. Nil fields are left alone.
type UpdateRequest struct {
	Make          *string
	Model         *string
	Year          *int
	VIN           *string
	LicensePlate  *string
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	Odometer      *int
}

var (
	ErrVehicleNotFound = errors.New("vehicle_not_found")
)
