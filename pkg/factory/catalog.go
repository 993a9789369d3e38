package factory

// Fixed value lists used by the enum and multi-select fields.
var (
	Genders = []string{"Male", "Female", "Other"}

	Degrees = []string{"B.Sc.", "M.Sc.", "Ph.D.", "Diploma"}
	Grades  = []string{"First Class", "Second Class Upper", "Second Class Lower", "Pass"}

	BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
	Allergens  = []string{"Penicillin", "Peanuts", "Latex", "Bee stings", "Dust"}

	TicketStatuses   = []string{"open", "pending", "closed"}
	TicketPriorities = []string{"low", "medium", "high"}

	PlanFeatures = []string{"Unlimited access", "Priority support", "Custom reports", "Team management", "API access"}
)

const (
	// DefaultCountryCode prefixes User.Phone when no country code is supplied.
	DefaultCountryCode = "+1"

	NairaSign  = "₦"
	DollarSign = "$"

	ProductPriceMin = 1000
	ProductPriceMax = 20000
	ProductStockMax = 500

	PlanPriceMin = 5
	PlanPriceMax = 100

	OrderQuantityMin = 1
	OrderQuantityMax = 5

	FollowersMax = 100000

	allergyCount     = 2
	planFeatureCount = 3

	registrationNumberLength = 8
	bookingRefLength         = 6
	phoneDigits              = 10
)

var accountNames = []string{
	"Checking Account",
	"Savings Account",
	"Money Market Account",
	"Investment Account",
	"Home Loan Account",
	"Credit Card Account",
	"Auto Loan Account",
	"Personal Loan Account",
}

// ibanFormats lists countries whose BBAN may be entirely numeric, with the BBAN length.
var ibanFormats = []struct {
	country string
	length  int
}{
	{"AT", 16},
	{"BE", 12},
	{"CH", 17},
	{"DE", 18},
	{"ES", 20},
	{"FR", 23},
	{"PL", 24},
	{"PT", 21},
}
