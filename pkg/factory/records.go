package factory

import "time"

// User is a fake person with contact details.
type User struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
}

// Address is a fake postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Product is a catalogue item priced in Naira.
type Product struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
}

// Order ties a user to a product. Total is always the product price times Quantity.
type Order struct {
	User     User    `json:"user"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Total    string  `json:"total"`
}

type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
}

// PaymentCard expiry is a YYYY-MM-DD date in a later calendar year than generation.
type PaymentCard struct {
	Type   string `json:"type"`
	Number string `json:"number"`
	CVV    string `json:"cvv"`
	Expiry string `json:"expiry"`
}

type Vehicle struct {
	Make               string `json:"make"`
	Model              string `json:"model"`
	Type               string `json:"type"`
	VIN                string `json:"vin"`
	RegistrationNumber string `json:"registrationNumber"`
}

type BankAccount struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IBAN          string `json:"iban"`
	BIC           string `json:"bic"`
}

type JobProfile struct {
	Title   string `json:"title"`
	Area    string `json:"area"`
	Type    string `json:"type"`
	Company string `json:"company"`
}

// EducationRecord keeps its dates as time values; EndDate is strictly after StartDate.
type EducationRecord struct {
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"fieldOfStudy"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Grade        string    `json:"grade"`
	Description  string    `json:"description"`
}

type SocialProfile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	URL       string `json:"url"`
	Followers int    `json:"followers"`
}

type MedicalRecord struct {
	PatientID string   `json:"patientId"`
	BloodType string   `json:"bloodType"`
	Allergies []string `json:"allergies"`
	Diagnosis string   `json:"diagnosis"`
	LastVisit string   `json:"lastVisit"`
}

type TravelBooking struct {
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate"`
	Airline       string `json:"airline"`
	BookingRef    string `json:"bookingRef"`
}

type SupportTicket struct {
	TicketID  string `json:"ticketId"`
	Subject   string `json:"subject"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"createdAt"`
}

type SubscriptionPlan struct {
	PlanName      string   `json:"planName"`
	PricePerMonth string   `json:"pricePerMonth"`
	Features      []string `json:"features"`
}

type ChatMessage struct {
	MessageID string `json:"messageId"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
