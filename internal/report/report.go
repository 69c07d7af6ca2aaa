package report

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result is the opaque key-value payload a lookup service returned for one
// record. Values keep whatever shape the provider sent; rendering never fails
// on a missing or empty field.
type Result map[string]any

const notAvailable = "Not Available"

var titleCaser = cases.Title(language.Und)

// Field renders a single result value, falling back to "Not Available" when
// the key is absent, nil, or blank.
func Field(r Result, key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return notAvailable
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	if s == "" {
		return notAvailable
	}
	return s
}

// Address normalizes a multi-segment address: the provider uses "!" as a
// segment delimiter and doubles it between some segments. Segments are
// title-cased and joined with ", ".
func Address(v any) string {
	raw, _ := v.(string)
	if strings.TrimSpace(raw) == "" {
		return notAvailable
	}
	raw = strings.ReplaceAll(raw, "!!", "!")
	var parts []string
	for _, p := range strings.Split(raw, "!") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		parts = append(parts, titleCaser.String(p))
	}
	if len(parts) == 0 {
		return notAvailable
	}
	return strings.Join(parts, ", ")
}

func checkedOn() string {
	return time.Now().Format("02-01-2006")
}

// Common renders the shared identity report used by mobile and Aadhaar lookups.
func Common(r Result) string {
	return fmt.Sprintf(`
LOOKUP REPORT
-------------------

Name        : %s
Father Name : %s
Mobile      : %s
Alt Mobile  : %s
Circle      : %s
Address     : %s
ID Number   : %s
Email       : %s

Checked On  : %s
`,
		Field(r, "name"), Field(r, "father_name"), Field(r, "mobile"),
		Field(r, "alt_mobile"), Field(r, "circle"), Address(r["address"]),
		Field(r, "id_number"), Field(r, "email"), checkedOn())
}

// GST renders a GSTIN registration report.
func GST(r Result) string {
	var addrParts []string
	for _, key := range []string{"AddrBnm", "AddrBno", "AddrFlno", "AddrSt", "AddrLoc", "AddrPncd"} {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		s := strings.TrimSpace(fmt.Sprintf("%v", v))
		if s == "" {
			continue
		}
		addrParts = append(addrParts, s)
	}
	addr := notAvailable
	if len(addrParts) > 0 {
		addr = strings.Join(addrParts, ", ")
	}
	return fmt.Sprintf(`
GST LOOKUP REPORT
-------------------

GSTIN            : %s
Trade Name       : %s
Legal Name       : %s
Address          : %s
State Code       : %s
Taxpayer Type    : %s
Status           : %s
Block Status     : %s
Registration Dt  : %s
Deregistration Dt: %s

Checked On       : %s
`,
		Field(r, "Gstin"), Field(r, "TradeName"), Field(r, "LegalName"), addr,
		Field(r, "StateCode"), Field(r, "TxpType"), Field(r, "Status"),
		Field(r, "BlkStatus"), Field(r, "DtReg"), Field(r, "DtDReg"), checkedOn())
}

// IFSC renders a bank branch report.
func IFSC(r Result) string {
	return fmt.Sprintf(`
IFSC LOOKUP REPORT
-------------------

Bank Name    : %s
Bank Code    : %s
IFSC Code    : %s
Branch       : %s
Address      : %s
City         : %s
District     : %s
State        : %s
Contact      : %s
MICR         : %s
NEFT         : %s
RTGS         : %s
IMPS         : %s
UPI          : %s
SWIFT        : %s
ISO Code     : %s
Centre       : %s

Checked On   : %s
`,
		Field(r, "BANK"), Field(r, "BANKCODE"), Field(r, "IFSC"), Field(r, "BRANCH"),
		Field(r, "ADDRESS"), Field(r, "CITY"), Field(r, "DISTRICT"), Field(r, "STATE"),
		Field(r, "CONTACT"), Field(r, "MICR"), Field(r, "NEFT"), Field(r, "RTGS"),
		Field(r, "IMPS"), Field(r, "UPI"), Field(r, "SWIFT"), Field(r, "ISO3166"),
		Field(r, "CENTRE"), checkedOn())
}

// UPI renders a payment-address verification report.
func UPI(r Result) string {
	return fmt.Sprintf(`
UPI LOOKUP REPORT
-------------------

Name                 : %s
VPA                  : %s
IFSC                 : %s
Account Number       : %s
Merchant             : %s
Merchant Verified    : %s
Internal Merchant    : %s
FamPay User          : %s
FamPay Username      : %s
FamPay First Name    : %s
FamPay Last Name     : %s

Checked On           : %s
`,
		Field(r, "name"), Field(r, "vpa"), Field(r, "ifsc"), Field(r, "acc_no"),
		Field(r, "is_merchant"), Field(r, "is_merchant_verified"),
		Field(r, "is_internal_merchant"), Field(r, "is_fampay_user"),
		Field(r, "fampay_username"), Field(r, "fampay_first_name"),
		Field(r, "fampay_last_name"), checkedOn())
}

// Fam renders a family-payment address report.
func Fam(r Result) string {
	return fmt.Sprintf(`
FAM LOOKUP REPORT
-------------------

FAM ID      : %s
Name        : %s
Phone       : %s
Source      : %s
Status      : %s
Type        : %s

Checked On  : %s
`,
		Field(r, "fam_id"), Field(r, "name"), Field(r, "phone"),
		Field(r, "source"), Field(r, "status"), Field(r, "type"), checkedOn())
}

// Vehicle renders a registration report for the given plate.
func Vehicle(reg string, r Result) string {
	return fmt.Sprintf(`
VEHICLE LOOKUP REPORT
---------------------

Registration Number : %s
Owner Name         : %s
Make / Model       : %s
Fuel Type          : %s
Vehicle Type       : %s
Registration Date  : %s
Registration Place : %s
Engine Number      : %s
Chassis Number     : %s
Commercial Vehicle : %s
Previous Insurer   : %s
Policy Expiry Date : %s
Permanent Address  : %s
Present Address    : %s

Checked On         : %s
`,
		reg, Field(r, "owner_name"), Field(r, "make_model"), Field(r, "fuel_type"),
		Field(r, "vehicle_type"), Field(r, "registration_date"),
		Field(r, "registration_address"), Field(r, "engine_number"),
		Field(r, "chassis_number"), Field(r, "is_commercial"),
		Field(r, "previous_insurer"), Field(r, "previous_policy_expiry_date"),
		Field(r, "permanent_address"), Field(r, "present_address"), checkedOn())
}

// Filename names a generated report file for the given moment.
func Filename(t time.Time) string {
	return "Report_" + t.Format("02012006_150405") + ".txt"
}

// VehicleFilename names a vehicle report file for the given plate and moment.
func VehicleFilename(reg string, t time.Time) string {
	return "Vehicle_Report_" + reg + "_" + t.Format("02012006_150405") + ".txt"
}
