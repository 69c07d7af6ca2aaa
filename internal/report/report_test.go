package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldDefaults(t *testing.T) {
	r := Result{"name": "Asha", "blank": "  ", "nil": nil}
	assert.Equal(t, "Asha", Field(r, "name"))
	assert.Equal(t, "Not Available", Field(r, "blank"))
	assert.Equal(t, "Not Available", Field(r, "nil"))
	assert.Equal(t, "Not Available", Field(r, "missing"))
}

func TestAddressNormalization(t *testing.T) {
	assert.Equal(t, "Flat 4, Mg Road, Pune", Address("FLAT 4!!MG ROAD!PUNE"))
	assert.Equal(t, "Pune", Address("!!pune!!"))
	assert.Equal(t, "Not Available", Address(""))
	assert.Equal(t, "Not Available", Address(nil))
	assert.Equal(t, "Not Available", Address("!!!"))
}

// Every renderer must be total: a record with no fields still renders each
// line with the Not Available marker.
func TestRenderersTotalOnEmptyResult(t *testing.T) {
	renders := map[string]string{
		"common":  Common(Result{}),
		"gst":     GST(Result{}),
		"ifsc":    IFSC(Result{}),
		"upi":     UPI(Result{}),
		"fam":     Fam(Result{}),
		"vehicle": Vehicle("GJ01AB1234", Result{}),
	}
	for name, out := range renders {
		assert.Contains(t, out, "Not Available", name)
		assert.Contains(t, out, "Checked On", name)
		for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
			if !strings.Contains(line, ":") {
				continue
			}
			_, value, _ := strings.Cut(line, ":")
			// Header/divider lines have no value part; field lines must not
			// be blank.
			if strings.TrimSpace(value) == "" && strings.Contains(line, " : ") {
				t.Errorf("%s: blank field line %q", name, line)
			}
		}
	}
}

func TestCommonReportFields(t *testing.T) {
	out := Common(Result{
		"name":        "Asha Rao",
		"father_name": "K Rao",
		"mobile":      "9876543210",
		"address":     "12 MG ROAD!!BANGALORE",
	})
	assert.Contains(t, out, "Name        : Asha Rao")
	assert.Contains(t, out, "Mobile      : 9876543210")
	assert.Contains(t, out, "Address     : 12 Mg Road, Bangalore")
	assert.Contains(t, out, "Email       : Not Available")
	assert.Contains(t, out, "Checked On  : "+time.Now().Format("02-01-2006"))
}

func TestGSTAddressJoin(t *testing.T) {
	out := GST(Result{
		"Gstin":    "24ABCDE1234F1Z5",
		"AddrBno":  "221",
		"AddrSt":   "Ring Road",
		"AddrPncd": "380001",
	})
	assert.Contains(t, out, "Address          : 221, Ring Road, 380001")
	assert.Contains(t, out, "GSTIN            : 24ABCDE1234F1Z5")

	empty := GST(Result{})
	assert.Contains(t, empty, "Address          : Not Available")
}

func TestVehicleReportHeader(t *testing.T) {
	out := Vehicle("DL1CAB1234", Result{"owner_name": "R Gupta"})
	assert.Contains(t, out, "VEHICLE LOOKUP REPORT")
	assert.Contains(t, out, "Registration Number : DL1CAB1234")
	assert.Contains(t, out, "Owner Name         : R Gupta")
	assert.Contains(t, out, "Chassis Number     : Not Available")
}

// Rendering the same result twice in one run yields identical bytes.
func TestRenderIdempotent(t *testing.T) {
	r := Result{"name": "Asha", "mobile": "9876543210"}
	require.Equal(t, Common(r), Common(r))
}

func TestFilenames(t *testing.T) {
	ts := time.Date(2025, 3, 9, 14, 5, 7, 0, time.UTC)
	assert.Equal(t, "Report_09032025_140507.txt", Filename(ts))
	assert.Equal(t, "Vehicle_Report_GJ01AB1234_09032025_140507.txt", VehicleFilename("GJ01AB1234", ts))
}
