package api

import (
	"time"

	"github.com/skleeno/showroom-cli/internal/collection"
)

// --- Status Enumerations ---

var (
	CarStatuses         = collection.StatusSet{"available", "sold", "pending"}
	InspectionStatuses  = collection.StatusSet{"pending", "confirmed", "completed", "cancelled"}
	PurchaseStatuses    = collection.StatusSet{"pending", "completed", "failed"}
	SellRequestStatuses = collection.StatusSet{"pending", "approved", "rejected"}
)

// --- Car ---

// Car is a vehicle listing as the backend returns it.
type Car struct {
	ID           string    `json:"_id"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Price        float64   `json:"price"`
	Mileage      int       `json:"mileage"`
	Color        string    `json:"color"`
	FuelType     string    `json:"fuelType"`
	Transmission string    `json:"transmission"`
	Description  string    `json:"description"`
	Engine       string    `json:"engine"`
	Images       []string  `json:"images"`
	Condition    string    `json:"condition"`
	Location     string    `json:"location"`
	Features     []string  `json:"features"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (c Car) RecordID() string     { return c.ID }
func (c Car) RecordStatus() string { return c.Status }

// CarDraft carries the fields sent when creating or updating a listing.
// Images are uploaded as multipart attachments alongside the fields.
type CarDraft struct {
	Brand        string
	Model        string
	Year         int
	Price        float64
	Mileage      int
	Color        string
	FuelType     string
	Transmission string
	Description  string
	Engine       string
	Condition    string
	Location     string
	Features     []string
	Status       string
	Images       []FileAttachment
}

// FileAttachment is one binary upload in a multipart request.
type FileAttachment struct {
	Field string
	Name  string
	Data  []byte
}

// --- Inspection Booking ---

// InspectionBooking is the flat client shape of a booking. The server
// nests user and car sub-objects; transformInspection flattens them.
type InspectionBooking struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	UserPhone string    `json:"userPhone"`
	CarID     string    `json:"carId"`
	CarBrand  string    `json:"carBrand"`
	CarModel  string    `json:"carModel"`
	CarYear   string    `json:"carYear"`
	Location  string    `json:"location"`
	Date      time.Time `json:"inspectionDate"`
	Note      string    `json:"note"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b InspectionBooking) RecordID() string     { return b.ID }
func (b InspectionBooking) RecordStatus() string { return b.Status }

// rawInspection is the booking as the server sends it.
type rawInspection struct {
	ID   string `json:"_id"`
	User *struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"user"`
	Car *struct {
		ID    string `json:"_id"`
		Brand string `json:"brand"`
		Model string `json:"model"`
		Year  int    `json:"year"`
	} `json:"car"`
	Location  string     `json:"location"`
	Note      string     `json:"note"`
	Date      *time.Time `json:"date"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"createdAt"`
}

// --- Sell Request ---

// SellRequest is a customer's request to sell their vehicle.
type SellRequest struct {
	ID             string    `json:"_id"`
	User           string    `json:"user"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Price          float64   `json:"price"`
	Mileage        int       `json:"mileage"`
	Engine         string    `json:"engine"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	InteriorImages []string  `json:"interiorImages"`
	ExteriorImages []string  `json:"exteriorImages"`
	Features       []string  `json:"features"`
	OwnerName      string    `json:"ownerName"`
	OwnerEmail     string    `json:"ownerEmail"`
	OwnerPhone     string    `json:"ownerPhone"`
	IDFront        string    `json:"idFront,omitempty"`
	IDBack         string    `json:"idBack,omitempty"`
	CarReg         string    `json:"carReg,omitempty"`
	CustomPaper    string    `json:"customPaper,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (r SellRequest) RecordID() string     { return r.ID }
func (r SellRequest) RecordStatus() string { return r.Status }

// --- Purchase ---

// Purchase is a completed or in-flight purchase transaction.
type Purchase struct {
	ID             string    `json:"_id"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	UserEmail      string    `json:"userEmail"`
	UserPhone      string    `json:"userPhone"`
	CarID          string    `json:"carId"`
	CarDetails     string    `json:"carDetails"`
	PurchaseAmount float64   `json:"purchaseAmount"`
	PaymentMethod  string    `json:"paymentMethod"`
	TransactionID  string    `json:"transactionId"`
	Status         string    `json:"status"`
	PurchaseDate   time.Time `json:"purchaseDate"`
}

func (p Purchase) RecordID() string     { return p.ID }
func (p Purchase) RecordStatus() string { return p.Status }

// --- Auth ---

// User is the authenticated operator.
type User struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginInput carries the credentials for logging in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse contains the bearer token after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// --- Envelopes ---

// listResponse is the `{success, count, data}` wrapper some collection
// endpoints use.
type listResponse[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}
