// Package ids mints the prefixed record identifiers used across the API
// (e.g. "APT-9f1b..."). The suffix is a random UUID; identifiers carry no
// ordering.
package ids

import "github.com/google/uuid"

const (
	PrefixAppointment  = "APT"
	PrefixAvailability = "SLOT"
	PrefixPatient      = "PAT"
	PrefixDoctor       = "DOC"
	PrefixDepartment   = "DEPT"
	PrefixBed          = "BED"
	PrefixBill         = "BILL"
	PrefixBillItem     = "ITEM"
	PrefixMedication   = "MED"
	PrefixPrescription = "PRES"

	// shares the ITEM- namespace with bill items
	PrefixPrescriptionItem = "ITEM"
	PrefixUser         = "USR"
)

func New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
