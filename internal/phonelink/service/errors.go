package service

import (
	"errors"
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// ErrInvalidNumber marks a number that parsed but failed validation.
var ErrInvalidNumber = errors.New("number failed validation")

// ErrorKind classifies render failures. KindUnrecognized is the catch-all.
type ErrorKind int

const (
	KindUnrecognized ErrorKind = iota
	KindInvalidCountryCode
	KindNotANumber
	KindTooShortAfterIDD
	KindTooShortNSN
	KindTooLong
	KindInvalidNumber
)

var kindNames = map[ErrorKind]string{
	KindUnrecognized:       "unrecognized",
	KindInvalidCountryCode: "invalid_country_code",
	KindNotANumber:         "not_a_number",
	KindTooShortAfterIDD:   "too_short_after_idd",
	KindTooShortNSN:        "too_short_nsn",
	KindTooLong:            "too_long",
	KindInvalidNumber:      "invalid_number",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnrecognized]
}

var kindSentinels = []struct {
	kind ErrorKind
	err  error
}{
	{KindInvalidCountryCode, phonenumbers.ErrInvalidCountryCode},
	{KindNotANumber, phonenumbers.ErrNotANumber},
	{KindTooShortAfterIDD, phonenumbers.ErrTooShortAfterIDD},
	{KindTooShortNSN, phonenumbers.ErrTooShortNSN},
	{KindTooLong, phonenumbers.ErrNumTooLong},
	{KindInvalidNumber, ErrInvalidNumber},
}

// Classify maps an error onto its kind.
func Classify(err error) ErrorKind {
	for _, s := range kindSentinels {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}
	return KindUnrecognized
}

// Message returns the diagnostic text for an error.
func Message(err error) string {
	switch Classify(err) {
	case KindInvalidCountryCode:
		return "country calling code not recognized"
	case KindNotANumber:
		return "input did not look like a phone number"
	case KindTooShortAfterIDD:
		return "too short after IDD"
	case KindTooShortNSN:
		return "input too short to be a phone number"
	case KindTooLong:
		return "input too long to be a phone number"
	case KindInvalidNumber:
		return "number failed validation"
	default:
		return fmt.Sprintf("unrecognized error: %v", err)
	}
}

// Translate builds the diagnostic log line "<message> [<input> <region>]".
// An absent region prints as null so it can't be confused with "".
func Translate(err error, input string, region *string) string {
	return fmt.Sprintf("%s [%s %s]", Message(err), input, regionToken(region))
}

func regionToken(region *string) string {
	if region == nil {
		return "null"
	}
	return *region
}
