package factory

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Draw helpers run with f.mu held.

func (f *Factory) between(start, end time.Time) time.Time {
	if end.Before(start) {
		start, end = end, start
	}
	return f.faker.DateRange(start, end).UTC()
}

func (f *Factory) code(alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[f.faker.Number(0, len(alphabet)-1)]
	}
	return string(b)
}

// pick returns n distinct catalog entries in the order the provider shuffled them.
func (f *Factory) pick(catalog []string, n int) []string {
	shuffled := append([]string(nil), catalog...)
	f.faker.ShuffleStrings(shuffled)
	return shuffled[:n:n]
}

func (f *Factory) sentences(n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = f.faker.Sentence(f.faker.Number(3, 10))
	}
	return strings.Join(out, " ")
}

func (f *Factory) uuid() string {
	return uuid.Must(uuid.NewRandomFromReader(providerReader{f.faker})).String()
}

func (f *Factory) iban() string {
	format := ibanFormats[f.faker.Number(0, len(ibanFormats)-1)]
	bban := f.code("0123456789", format.length)
	return format.country + ibanCheckDigits(format.country, bban) + bban
}

func (f *Factory) bic() string {
	country := ibanFormats[f.faker.Number(0, len(ibanFormats)-1)].country
	bic := f.code(upperLetters, 4) + country + f.code(upperAlphanumeric, 2)
	if f.faker.Bool() {
		bic += "XXX"
	}
	return bic
}

// providerReader feeds provider bytes to uuid so identifiers follow the seed.
type providerReader struct {
	faker *gofakeit.Faker
}

func (r providerReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.faker.Uint8()
	}
	return len(p), nil
}
