package factory

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names one of the record types the factory can produce.
type Kind string

const (
	KindUser             Kind = "user"
	KindAddress          Kind = "address"
	KindProduct          Kind = "product"
	KindOrder            Kind = "order"
	KindCompany          Kind = "company"
	KindPaymentCard      Kind = "paymentCard"
	KindVehicle          Kind = "vehicle"
	KindBankAccount      Kind = "bankAccount"
	KindJobProfile       Kind = "jobProfile"
	KindEducationRecord  Kind = "educationRecord"
	KindSocialProfile    Kind = "socialProfile"
	KindMedicalRecord    Kind = "medicalRecord"
	KindTravelBooking    Kind = "travelBooking"
	KindSupportTicket    Kind = "supportTicket"
	KindSubscriptionPlan Kind = "subscriptionPlan"
	KindChatMessage      Kind = "chatMessage"
)

// Recognised Options keys.
const (
	OptionCountryCode = "countryCode"
	OptionCountry     = "country"
)

// ErrUnknownKind is returned for kind names the factory does not produce.
var ErrUnknownKind = errors.New("unknown record kind")

var allKinds = []Kind{
	KindUser,
	KindAddress,
	KindProduct,
	KindOrder,
	KindCompany,
	KindPaymentCard,
	KindVehicle,
	KindBankAccount,
	KindJobProfile,
	KindEducationRecord,
	KindSocialProfile,
	KindMedicalRecord,
	KindTravelBooking,
	KindSupportTicket,
	KindSubscriptionPlan,
	KindChatMessage,
}

// Kinds returns every record kind in declaration order.
func Kinds() []Kind {
	return append([]Kind(nil), allKinds...)
}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(name string) (Kind, error) {
	trimmed := strings.TrimSpace(name)
	for _, k := range allKinds {
		if strings.EqualFold(string(k), trimmed) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Options is the untyped form of the per-kind configuration. Keys a kind
// does not recognise are ignored.
type Options map[string]string

func (o Options) userOptions() UserOptions {
	return UserOptions{CountryCode: o[OptionCountryCode]}
}

func (o Options) addressOptions() AddressOptions {
	return AddressOptions{Country: o[OptionCountry]}
}

func (o Options) orderOptions() OrderOptions {
	return OrderOptions{CountryCode: o[OptionCountryCode]}
}

// Generate produces one record of the given kind.
func (f *Factory) Generate(kind Kind, opts Options) (any, error) {
	switch kind {
	case KindUser:
		return f.User(opts.userOptions()), nil
	case KindAddress:
		return f.Address(opts.addressOptions()), nil
	case KindProduct:
		return f.Product(), nil
	case KindOrder:
		return f.Order(opts.orderOptions()), nil
	case KindCompany:
		return f.Company(), nil
	case KindPaymentCard:
		return f.PaymentCard(), nil
	case KindVehicle:
		return f.Vehicle(), nil
	case KindBankAccount:
		return f.BankAccount(), nil
	case KindJobProfile:
		return f.JobProfile(), nil
	case KindEducationRecord:
		return f.EducationRecord(), nil
	case KindSocialProfile:
		return f.SocialProfile(), nil
	case KindMedicalRecord:
		return f.MedicalRecord(), nil
	case KindTravelBooking:
		return f.TravelBooking(), nil
	case KindSupportTicket:
		return f.SupportTicket(), nil
	case KindSubscriptionPlan:
		return f.SubscriptionPlan(), nil
	case KindChatMessage:
		return f.ChatMessage(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
