// Package factory produces plausible fake records for tests and demos.
//
// Every record comes from an injected gofakeit provider, so a Factory built
// with a fixed seed and clock yields the same sequence of records each run.
package factory

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Factory generates records from a single provider. It is safe for concurrent use.
type Factory struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	nowFn func() time.Time
}

// New returns a Factory over a provider seeded with seed. A zero seed draws a random one.
func New(seed int64) *Factory {
	return NewWithFaker(gofakeit.New(uint64(seed)))
}

// NewWithFaker wraps an existing provider. A nil provider falls back to a randomly seeded one.
func NewWithFaker(faker *gofakeit.Faker) *Factory {
	if faker == nil {
		faker = gofakeit.New(0)
	}
	return &Factory{
		faker: faker,
		nowFn: time.Now,
	}
}

// WithClock overrides the time source used by the date policies.
func (f *Factory) WithClock(nowFn func() time.Time) *Factory {
	if nowFn != nil {
		f.mu.Lock()
		f.nowFn = nowFn
		f.mu.Unlock()
	}
	return f
}

// UserOptions configures User. The zero value uses DefaultCountryCode.
type UserOptions struct {
	CountryCode string
}

// AddressOptions configures Address. An empty Country is filled by the provider.
type AddressOptions struct {
	Country string
}

// OrderOptions configures Order; CountryCode is forwarded to the embedded User.
type OrderOptions struct {
	CountryCode string
}

func locked[T any](f *Factory, gen func() T) T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return gen()
}

func (f *Factory) User(opts UserOptions) User {
	return locked(f, func() User { return f.user(opts) })
}

func (f *Factory) Address(opts AddressOptions) Address {
	return locked(f, func() Address { return f.address(opts) })
}

func (f *Factory) Product() Product { return locked(f, f.product) }

// Order composes a User and a Product and derives Total from the product price.
func (f *Factory) Order(opts OrderOptions) Order {
	return locked(f, func() Order { return f.order(opts) })
}

func (f *Factory) Company() Company                   { return locked(f, f.company) }
func (f *Factory) PaymentCard() PaymentCard           { return locked(f, f.paymentCard) }
func (f *Factory) Vehicle() Vehicle                   { return locked(f, f.vehicle) }
func (f *Factory) BankAccount() BankAccount           { return locked(f, f.bankAccount) }
func (f *Factory) JobProfile() JobProfile             { return locked(f, f.jobProfile) }
func (f *Factory) EducationRecord() EducationRecord   { return locked(f, f.educationRecord) }
func (f *Factory) SocialProfile() SocialProfile       { return locked(f, f.socialProfile) }
func (f *Factory) MedicalRecord() MedicalRecord       { return locked(f, f.medicalRecord) }
func (f *Factory) TravelBooking() TravelBooking       { return locked(f, f.travelBooking) }
func (f *Factory) SupportTicket() SupportTicket       { return locked(f, f.supportTicket) }
func (f *Factory) SubscriptionPlan() SubscriptionPlan { return locked(f, f.subscriptionPlan) }
func (f *Factory) ChatMessage() ChatMessage           { return locked(f, f.chatMessage) }

func (f *Factory) user(opts UserOptions) User {
	countryCode := opts.CountryCode
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	return User{
		FirstName: f.faker.FirstName(),
		LastName:  f.faker.LastName(),
		Email:     f.faker.Email(),
		Phone:     countryCode + " " + f.faker.DigitN(phoneDigits),
		Gender:    f.faker.RandomString(Genders),
	}
}

func (f *Factory) address(opts AddressOptions) Address {
	addr := Address{
		Street:     f.faker.Street(),
		City:       f.faker.City(),
		State:      f.faker.State(),
		PostalCode: f.faker.Zip(),
		Country:    opts.Country,
	}
	if addr.Country == "" {
		addr.Country = f.faker.Country()
	}
	return addr
}

func (f *Factory) product() Product {
	price := math.Round(f.faker.Price(ProductPriceMin, ProductPriceMax))
	return Product{
		Name:     f.faker.ProductName(),
		Price:    FormatAmount(NairaSign, price, 0),
		Category: f.faker.ProductCategory(),
		Stock:    f.faker.IntRange(0, ProductStockMax),
	}
}

func (f *Factory) order(opts OrderOptions) Order {
	user := f.user(UserOptions{CountryCode: opts.CountryCode})
	product := f.product()
	quantity := f.faker.IntRange(OrderQuantityMin, OrderQuantityMax)

	// Total is derived from the rendered price so it always matches what callers see.
	amount, err := ParseAmount(product.Price, NairaSign)
	if err != nil {
		panic(fmt.Sprintf("factory: order total: %v", err))
	}

	return Order{
		User:     user,
		Product:  product,
		Quantity: quantity,
		Total:    FormatAmount(NairaSign, amount*float64(quantity), 0),
	}
}

func (f *Factory) company() Company {
	return Company{
		Name:        f.faker.Company(),
		CatchPhrase: f.faker.Slogan(),
		Industry:    f.faker.BuzzWord(),
		Website:     f.faker.URL(),
	}
}

func (f *Factory) paymentCard() PaymentCard {
	now := f.nowFn().UTC()
	nextYear := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return PaymentCard{
		Type:   f.faker.CreditCardType(),
		Number: f.faker.CreditCardNumber(nil),
		CVV:    f.faker.CreditCardCvv(),
		Expiry: formatDate(f.between(nextYear, now.AddDate(3, 0, 0))),
	}
}

func (f *Factory) vehicle() Vehicle {
	return Vehicle{
		Make:               f.faker.CarMaker(),
		Model:              f.faker.CarModel(),
		Type:               f.faker.CarType(),
		VIN:                f.code(vinAlphabet, vinLength),
		RegistrationNumber: f.code(upperAlphanumeric, registrationNumberLength),
	}
}

func (f *Factory) bankAccount() BankAccount {
	return BankAccount{
		BankName:      f.faker.RandomString(accountNames),
		AccountNumber: f.faker.AchAccount(),
		IBAN:          f.iban(),
		BIC:           f.bic(),
	}
}

func (f *Factory) jobProfile() JobProfile {
	return JobProfile{
		Title:   f.faker.JobTitle(),
		Area:    f.faker.JobDescriptor(),
		Type:    f.faker.JobLevel(),
		Company: f.faker.Company(),
	}
}

func (f *Factory) educationRecord() EducationRecord {
	now := f.nowFn().UTC()
	recent := now.Add(-24 * time.Hour)
	// start stays clear of the recent window so the end date is always later.
	start := f.between(now.AddDate(-10, 0, 0), recent.Add(-time.Second))
	end := f.between(recent, now)
	return EducationRecord{
		Institution:  f.faker.Company(),
		Degree:       f.faker.RandomString(Degrees),
		FieldOfStudy: f.faker.JobDescriptor(),
		StartDate:    start,
		EndDate:      end,
		Grade:        f.faker.RandomString(Grades),
		Description:  f.sentences(2),
	}
}

func (f *Factory) socialProfile() SocialProfile {
	return SocialProfile{
		Username:  f.faker.Username(),
		Email:     f.faker.Email(),
		Avatar:    fmt.Sprintf("https://avatars.githubusercontent.com/u/%d", f.faker.Number(1, 100000000)),
		URL:       f.faker.URL(),
		Followers: f.faker.IntRange(0, FollowersMax),
	}
}

func (f *Factory) medicalRecord() MedicalRecord {
	now := f.nowFn().UTC()
	words := make([]string, 3)
	for i := range words {
		words[i] = f.faker.LoremIpsumWord()
	}
	return MedicalRecord{
		PatientID: f.uuid(),
		BloodType: f.faker.RandomString(BloodTypes),
		Allergies: f.pick(Allergens, allergyCount),
		Diagnosis: strings.Join(words, " "),
		LastVisit: formatDate(f.between(now.AddDate(-1, 0, 0), now)),
	}
}

func (f *Factory) travelBooking() TravelBooking {
	now := f.nowFn().UTC()
	horizon := now.AddDate(1, 0, 0)
	departure := f.between(now.Add(time.Second), horizon)
	return TravelBooking{
		Destination:   f.faker.City(),
		DepartureDate: formatDate(departure),
		ReturnDate:    formatDate(f.between(departure, horizon)),
		Airline:       f.faker.Company(),
		BookingRef:    f.code(upperAlphanumeric, bookingRefLength),
	}
}

func (f *Factory) supportTicket() SupportTicket {
	now := f.nowFn().UTC()
	return SupportTicket{
		TicketID:  f.uuid(),
		Subject:   f.faker.Sentence(f.faker.Number(3, 10)),
		Status:    f.faker.RandomString(TicketStatuses),
		Priority:  f.faker.RandomString(TicketPriorities),
		CreatedAt: formatTimestamp(f.between(now.AddDate(-1, 0, 0), now)),
	}
}

func (f *Factory) subscriptionPlan() SubscriptionPlan {
	adjective := cases.Title(language.English).String(f.faker.Adjective())
	return SubscriptionPlan{
		PlanName:      adjective + " Plan",
		PricePerMonth: FormatAmount(DollarSign, f.faker.Price(PlanPriceMin, PlanPriceMax), 2),
		Features:      f.pick(PlanFeatures, planFeatureCount),
	}
}

func (f *Factory) chatMessage() ChatMessage {
	now := f.nowFn().UTC()
	return ChatMessage{
		MessageID: f.uuid(),
		Sender:    f.faker.Username(),
		Message:   f.sentences(2),
		Timestamp: formatTimestamp(f.between(now.Add(-24*time.Hour), now)),
	}
}
