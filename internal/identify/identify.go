package identify

import (
	"regexp"
	"strings"
)

// Kind is the classification assigned to a piece of input text. It decides
// which lookup command the text matches.
type Kind int

const (
	Unknown Kind = iota
	Mobile
	Aadhaar
	GST
	IFSC
	UPI
	Fam
	Vehicle
)

func (k Kind) String() string {
	switch k {
	case Mobile:
		return "mobile"
	case Aadhaar:
		return "aadhaar"
	case GST:
		return "gst"
	case IFSC:
		return "ifsc"
	case UPI:
		return "upi"
	case Fam:
		return "fam"
	case Vehicle:
		return "vehicle"
	default:
		return "unknown"
	}
}

// FamSuffix marks family-payment addresses.
const FamSuffix = "@fam"

var (
	digitsRe  = regexp.MustCompile(`^[0-9]+$`)
	gstinRe   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	ifscRe    = regexp.MustCompile(`^[A-Za-z]{4}`)
	vehicleRe = regexp.MustCompile(`^[A-Z]{2}[0-9]{1,2}[A-Z]{1,3}[0-9]{4}$`)
)

// Classify maps free text to the identifier kind it structurally matches,
// checking kinds in a fixed priority order. Unmatched text yields Unknown.
func Classify(raw string) Kind {
	switch {
	case IsMobile(raw):
		return Mobile
	case IsAadhaar(raw):
		return Aadhaar
	case IsGSTIN(raw):
		return GST
	case IsIFSC(raw):
		return IFSC
	case IsUPI(raw):
		return UPI
	case IsFamID(raw):
		return Fam
	case IsVehicle(raw):
		return Vehicle
	default:
		return Unknown
	}
}

// IsMobile reports whether text is a 10-digit mobile number starting with 6-9.
func IsMobile(text string) bool {
	if len(text) != 10 || !digitsRe.MatchString(text) {
		return false
	}
	return text[0] >= '6' && text[0] <= '9'
}

// IsAadhaar reports whether text is a 12-digit Aadhaar number. Aadhaar numbers
// never start with 0 or 1.
func IsAadhaar(text string) bool {
	if len(text) != 12 || !digitsRe.MatchString(text) {
		return false
	}
	return text[0] != '0' && text[0] != '1'
}

// IsGSTIN reports whether text matches the 15-character GSTIN structure.
func IsGSTIN(text string) bool {
	return gstinRe.MatchString(text)
}

// IsIFSC reports whether text is an 11-character IFSC code: four letters,
// then a literal zero.
func IsIFSC(text string) bool {
	if len(text) != 11 {
		return false
	}
	if !ifscRe.MatchString(text) {
		return false
	}
	return text[4] == '0'
}

// IsUPI reports whether text looks like a UPI payment address.
func IsUPI(text string) bool {
	return strings.Contains(text, "@") && !strings.HasSuffix(text, FamSuffix)
}

// IsFamID reports whether text is a FAM payment address.
func IsFamID(text string) bool {
	return strings.Contains(text, "@") && strings.HasSuffix(text, FamSuffix)
}

// IsVehicle reports whether text matches an Indian vehicle registration:
// state code, district digits, series letters, four-digit number.
func IsVehicle(text string) bool {
	return vehicleRe.MatchString(text)
}
