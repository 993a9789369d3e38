package factory

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

const iterations = 200

var (
	fixedNow = time.Date(2024, time.December, 30, 22, 15, 0, 0, time.UTC)

	phoneDigitsRe   = regexp.MustCompile(`^\d{10}$`)
	nairaRe         = regexp.MustCompile(`^₦\d+$`)
	dollarRe        = regexp.MustCompile(`^\$\d+\.\d{2}$`)
	registrationRe  = regexp.MustCompile(`^[A-Z0-9]{8}$`)
	bookingRefRe    = regexp.MustCompile(`^[A-Z0-9]{6}$`)
	vinRe           = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
	bicRe           = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}(XXX)?$`)
	emailRe         = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	githubAvatarURL = "https://avatars.githubusercontent.com/u/"
)

func newTestFactory(seed int64) *Factory {
	return New(seed).WithClock(func() time.Time { return fixedNow })
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func assertDistinctSubset(t *testing.T, got []string, catalog []string, size int) {
	t.Helper()
	if len(got) != size {
		t.Fatalf("expected %d entries, got %d (%v)", size, len(got), got)
	}
	seen := make(map[string]struct{}, len(got))
	for _, v := range got {
		if !contains(catalog, v) {
			t.Fatalf("entry %q not in catalog %v", v, catalog)
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate entry %q in %v", v, got)
		}
		seen[v] = struct{}{}
	}
}

func TestUser_DefaultCountryCode(t *testing.T) {
	f := newTestFactory(1)
	for i := 0; i < iterations; i++ {
		user := f.User(UserOptions{})
		prefix, digits, ok := strings.Cut(user.Phone, " ")
		if !ok {
			t.Fatalf("phone %q has no separator", user.Phone)
		}
		if prefix != DefaultCountryCode {
			t.Fatalf("expected prefix %s, got %q", DefaultCountryCode, prefix)
		}
		if !phoneDigitsRe.MatchString(digits) {
			t.Fatalf("expected 10 digits, got %q", digits)
		}
		if !contains(Genders, user.Gender) {
			t.Fatalf("unexpected gender %q", user.Gender)
		}
		if user.FirstName == "" || user.LastName == "" {
			t.Fatalf("expected names, got %+v", user)
		}
		if !emailRe.MatchString(user.Email) {
			t.Fatalf("email %q is not email shaped", user.Email)
		}
	}
}

func TestUser_CustomCountryCode(t *testing.T) {
	f := newTestFactory(2)
	user := f.User(UserOptions{CountryCode: "+44"})
	if !strings.HasPrefix(user.Phone, "+44 ") {
		t.Fatalf("expected +44 prefix, got %q", user.Phone)
	}
	if !phoneDigitsRe.MatchString(strings.TrimPrefix(user.Phone, "+44 ")) {
		t.Fatalf("expected 10 digits after prefix, got %q", user.Phone)
	}
}

func TestAddress_Country(t *testing.T) {
	f := newTestFactory(3)

	addr := f.Address(AddressOptions{Country: "USA"})
	if addr.Country != "USA" {
		t.Fatalf("expected country USA, got %q", addr.Country)
	}
	if addr.Street == "" || addr.City == "" || addr.State == "" || addr.PostalCode == "" {
		t.Fatalf("expected populated address, got %+v", addr)
	}

	generated := f.Address(AddressOptions{})
	if generated.Country == "" {
		t.Fatal("expected provider country when none supplied")
	}
}

func TestProduct_PriceWithinBounds(t *testing.T) {
	f := newTestFactory(4)
	for i := 0; i < iterations; i++ {
		product := f.Product()
		if !nairaRe.MatchString(product.Price) {
			t.Fatalf("price %q does not match ₦<digits>", product.Price)
		}
		amount, err := strconv.Atoi(strings.TrimPrefix(product.Price, NairaSign))
		if err != nil {
			t.Fatalf("parse price %q: %v", product.Price, err)
		}
		if amount < ProductPriceMin || amount > ProductPriceMax {
			t.Fatalf("price %d outside [%d, %d]", amount, ProductPriceMin, ProductPriceMax)
		}
		if product.Stock < 0 || product.Stock > ProductStockMax {
			t.Fatalf("stock %d out of range", product.Stock)
		}
	}
}

func TestOrder_TotalMatchesPriceTimesQuantity(t *testing.T) {
	f := newTestFactory(5)
	for i := 0; i < iterations; i++ {
		order := f.Order(OrderOptions{CountryCode: "+44"})
		if !strings.HasPrefix(order.User.Phone, "+44") {
			t.Fatalf("expected user phone to start with +44, got %q", order.User.Phone)
		}
		if order.Quantity < OrderQuantityMin || order.Quantity > OrderQuantityMax {
			t.Fatalf("quantity %d out of range", order.Quantity)
		}
		price, err := strconv.Atoi(strings.TrimPrefix(order.Product.Price, NairaSign))
		if err != nil {
			t.Fatalf("parse price %q: %v", order.Product.Price, err)
		}
		want := NairaSign + strconv.Itoa(price*order.Quantity)
		if order.Total != want {
			t.Fatalf("expected total %s, got %s", want, order.Total)
		}
	}
}

func TestCompany(t *testing.T) {
	company := newTestFactory(6).Company()
	if company.Name == "" || company.CatchPhrase == "" || company.Industry == "" || company.Website == "" {
		t.Fatalf("expected populated company, got %+v", company)
	}
}

func TestPaymentCard_ExpiryYearAfterCurrent(t *testing.T) {
	// fixedNow sits in late December, the edge where a naive future date stays in the same year.
	f := newTestFactory(7)
	for i := 0; i < iterations; i++ {
		card := f.PaymentCard()
		expiry, err := time.Parse(DateLayout, card.Expiry)
		if err != nil {
			t.Fatalf("parse expiry %q: %v", card.Expiry, err)
		}
		if expiry.Year() <= fixedNow.Year() {
			t.Fatalf("expected expiry year after %d, got %s", fixedNow.Year(), card.Expiry)
		}
		if expiry.After(fixedNow.AddDate(3, 0, 0)) {
			t.Fatalf("expiry %s beyond three years", card.Expiry)
		}
		if card.Type == "" || card.Number == "" || card.CVV == "" {
			t.Fatalf("expected populated card, got %+v", card)
		}
	}
}

func TestVehicle_Codes(t *testing.T) {
	f := newTestFactory(8)
	for i := 0; i < iterations; i++ {
		vehicle := f.Vehicle()
		if !registrationRe.MatchString(vehicle.RegistrationNumber) {
			t.Fatalf("bad registration number %q", vehicle.RegistrationNumber)
		}
		if !vinRe.MatchString(vehicle.VIN) {
			t.Fatalf("bad vin %q", vehicle.VIN)
		}
	}
}

func TestBankAccount(t *testing.T) {
	f := newTestFactory(9)
	for i := 0; i < iterations; i++ {
		account := f.BankAccount()
		if !contains(accountNames, account.BankName) {
			t.Fatalf("unexpected account name %q", account.BankName)
		}
		if account.AccountNumber == "" {
			t.Fatal("expected account number")
		}
		if ibanCheckDigits(account.IBAN[:2], account.IBAN[4:]) != account.IBAN[2:4] {
			t.Fatalf("iban %q fails checksum", account.IBAN)
		}
		if !bicRe.MatchString(account.BIC) {
			t.Fatalf("bad bic %q", account.BIC)
		}
	}
}

func TestIBANCheckDigits_KnownValue(t *testing.T) {
	// Reference IBAN from the ISO 13616 examples.
	if got := ibanCheckDigits("DE", "370400440532013000"); got != "89" {
		t.Fatalf("expected check digits 89, got %s", got)
	}
}

func TestJobProfile(t *testing.T) {
	job := newTestFactory(10).JobProfile()
	if job.Title == "" || job.Area == "" || job.Type == "" || job.Company == "" {
		t.Fatalf("expected populated job profile, got %+v", job)
	}
}

func TestEducationRecord(t *testing.T) {
	f := newTestFactory(11)
	for i := 0; i < iterations; i++ {
		edu := f.EducationRecord()
		if !edu.EndDate.After(edu.StartDate) {
			t.Fatalf("expected end %v after start %v", edu.EndDate, edu.StartDate)
		}
		if edu.StartDate.Before(fixedNow.AddDate(-10, 0, 0)) {
			t.Fatalf("start %v older than ten years", edu.StartDate)
		}
		if edu.EndDate.After(fixedNow) {
			t.Fatalf("end %v is in the future", edu.EndDate)
		}
		if !contains(Degrees, edu.Degree) {
			t.Fatalf("unexpected degree %q", edu.Degree)
		}
		if !contains(Grades, edu.Grade) {
			t.Fatalf("unexpected grade %q", edu.Grade)
		}
		if edu.Description == "" {
			t.Fatal("expected description")
		}
	}
}

func TestSocialProfile(t *testing.T) {
	f := newTestFactory(12)
	for i := 0; i < iterations; i++ {
		social := f.SocialProfile()
		if social.Followers < 0 || social.Followers > FollowersMax {
			t.Fatalf("followers %d out of range", social.Followers)
		}
		if !strings.HasPrefix(social.Avatar, githubAvatarURL) {
			t.Fatalf("unexpected avatar %q", social.Avatar)
		}
		if social.Username == "" || social.URL == "" {
			t.Fatalf("expected populated profile, got %+v", social)
		}
	}
}

func TestMedicalRecord(t *testing.T) {
	f := newTestFactory(13)
	for i := 0; i < iterations; i++ {
		rec := f.MedicalRecord()
		if _, err := uuid.Parse(rec.PatientID); err != nil || len(rec.PatientID) != 36 {
			t.Fatalf("patientId %q is not a uuid: %v", rec.PatientID, err)
		}
		if !contains(BloodTypes, rec.BloodType) {
			t.Fatalf("unexpected blood type %q", rec.BloodType)
		}
		assertDistinctSubset(t, rec.Allergies, Allergens, 2)
		if len(strings.Fields(rec.Diagnosis)) != 3 {
			t.Fatalf("expected three diagnosis words, got %q", rec.Diagnosis)
		}
		visit, err := time.Parse(DateLayout, rec.LastVisit)
		if err != nil {
			t.Fatalf("parse lastVisit %q: %v", rec.LastVisit, err)
		}
		if visit.After(fixedNow) {
			t.Fatalf("lastVisit %s in the future", rec.LastVisit)
		}
	}
}

func TestTravelBooking_ReturnNotBeforeDeparture(t *testing.T) {
	f := newTestFactory(14)
	for i := 0; i < iterations; i++ {
		booking := f.TravelBooking()
		departure, err := time.Parse(DateLayout, booking.DepartureDate)
		if err != nil {
			t.Fatalf("parse departure %q: %v", booking.DepartureDate, err)
		}
		ret, err := time.Parse(DateLayout, booking.ReturnDate)
		if err != nil {
			t.Fatalf("parse return %q: %v", booking.ReturnDate, err)
		}
		if ret.Before(departure) {
			t.Fatalf("return %s before departure %s", booking.ReturnDate, booking.DepartureDate)
		}
		if departure.Before(time.Date(fixedNow.Year(), fixedNow.Month(), fixedNow.Day(), 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("departure %s in the past", booking.DepartureDate)
		}
		if !bookingRefRe.MatchString(booking.BookingRef) {
			t.Fatalf("bad booking ref %q", booking.BookingRef)
		}
	}
}

func TestSupportTicket(t *testing.T) {
	f := newTestFactory(15)
	for i := 0; i < iterations; i++ {
		ticket := f.SupportTicket()
		if _, err := uuid.Parse(ticket.TicketID); err != nil {
			t.Fatalf("ticketId %q is not a uuid: %v", ticket.TicketID, err)
		}
		if !contains(TicketStatuses, ticket.Status) {
			t.Fatalf("unexpected status %q", ticket.Status)
		}
		if !contains(TicketPriorities, ticket.Priority) {
			t.Fatalf("unexpected priority %q", ticket.Priority)
		}
		created, err := time.Parse(TimestampLayout, ticket.CreatedAt)
		if err != nil {
			t.Fatalf("parse createdAt %q: %v", ticket.CreatedAt, err)
		}
		if created.After(fixedNow) {
			t.Fatalf("createdAt %s in the future", ticket.CreatedAt)
		}
		if ticket.Subject == "" {
			t.Fatal("expected subject")
		}
	}
}

func TestSubscriptionPlan(t *testing.T) {
	f := newTestFactory(16)
	for i := 0; i < iterations; i++ {
		plan := f.SubscriptionPlan()
		if !strings.HasSuffix(plan.PlanName, " Plan") {
			t.Fatalf("plan name %q lacks Plan suffix", plan.PlanName)
		}
		if !dollarRe.MatchString(plan.PricePerMonth) {
			t.Fatalf("price %q does not match $<digits>.<2 digits>", plan.PricePerMonth)
		}
		amount, err := ParseAmount(plan.PricePerMonth, DollarSign)
		if err != nil {
			t.Fatalf("parse price: %v", err)
		}
		if amount < PlanPriceMin || amount > PlanPriceMax {
			t.Fatalf("price %v outside [%d, %d]", amount, PlanPriceMin, PlanPriceMax)
		}
		assertDistinctSubset(t, plan.Features, PlanFeatures, 3)
	}
}

func TestChatMessage(t *testing.T) {
	f := newTestFactory(17)
	for i := 0; i < iterations; i++ {
		msg := f.ChatMessage()
		if _, err := uuid.Parse(msg.MessageID); err != nil {
			t.Fatalf("messageId %q is not a uuid: %v", msg.MessageID, err)
		}
		ts, err := time.Parse(TimestampLayout, msg.Timestamp)
		if err != nil {
			t.Fatalf("parse timestamp %q: %v", msg.Timestamp, err)
		}
		if ts.Before(fixedNow.Add(-24*time.Hour)) || ts.After(fixedNow) {
			t.Fatalf("timestamp %s not recent", msg.Timestamp)
		}
		if msg.Sender == "" || msg.Message == "" {
			t.Fatalf("expected populated message, got %+v", msg)
		}
	}
}

func TestFactory_SameSeedSameRecords(t *testing.T) {
	a := newTestFactory(99)
	b := newTestFactory(99)
	for _, kind := range Kinds() {
		ra, err := a.Generate(kind, nil)
		if err != nil {
			t.Fatalf("generate %s: %v", kind, err)
		}
		rb, err := b.Generate(kind, nil)
		if err != nil {
			t.Fatalf("generate %s: %v", kind, err)
		}
		if !reflect.DeepEqual(ra, rb) {
			t.Fatalf("kind %s differs for equal seeds:\n%+v\n%+v", kind, ra, rb)
		}
	}
}

func TestFactory_ConcurrentUse(t *testing.T) {
	f := newTestFactory(100)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				order := f.Order(OrderOptions{})
				if !strings.HasPrefix(order.User.Phone, DefaultCountryCode) {
					t.Errorf("unexpected phone %q", order.User.Phone)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestGenerate_Options(t *testing.T) {
	f := newTestFactory(18)

	rec, err := f.Generate(KindOrder, Options{OptionCountryCode: "+234", "ignored": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, ok := rec.(Order)
	if !ok {
		t.Fatalf("expected Order, got %T", rec)
	}
	if !strings.HasPrefix(order.User.Phone, "+234 ") {
		t.Fatalf("expected +234 prefix, got %q", order.User.Phone)
	}

	rec, err = f.Generate(KindAddress, Options{OptionCountry: "Nigeria"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr := rec.(Address); addr.Country != "Nigeria" {
		t.Fatalf("expected Nigeria, got %q", addr.Country)
	}

	if _, err := f.Generate(Kind("spaceship"), nil); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "user", want: KindUser},
		{in: "PaymentCard", want: KindPaymentCard},
		{in: " chatmessage ", want: KindChatMessage},
		{in: "invoice", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownKind) {
				t.Errorf("ParseKind(%q): expected ErrUnknownKind, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	if len(Kinds()) != 16 {
		t.Fatalf("expected 16 kinds, got %d", len(Kinds()))
	}
}

func TestParseAmount(t *testing.T) {
	if v, err := ParseAmount("₦1500", NairaSign); err != nil || v != 1500 {
		t.Fatalf("expected 1500, got %v (%v)", v, err)
	}
	if v, err := ParseAmount("$12.50", DollarSign); err != nil || v != 12.5 {
		t.Fatalf("expected 12.5, got %v (%v)", v, err)
	}
	for _, bad := range []string{"1500", "₦", "₦abc", "$1500"} {
		if _, err := ParseAmount(bad, NairaSign); !errors.Is(err, ErrMalformedAmount) {
			t.Errorf("ParseAmount(%q): expected ErrMalformedAmount, got %v", bad, err)
		}
	}
	if got := FormatAmount(DollarSign, 7, 2); got != "$7.00" {
		t.Fatalf("expected $7.00, got %s", got)
	}
}
