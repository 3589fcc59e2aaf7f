// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Status classifies roster involvement in a publication's author fields.
// The values are the literal cell contents written to the status column.
type Status string

const (
	// StatusNone marks a row where no roster name appears in any author field.
	// It exports as an empty cell.
	StatusNone Status = ""

	// StatusCoauthor marks a row where a roster name appears only in the
	// all-authors field.
	StatusCoauthor Status = "0"

	// StatusLead marks a row where a roster name appears in the first-author
	// or corresponding-author field. Lead wins when a row also qualifies as
	// coauthor.
	StatusLead Status = "1"
)

// Cell returns the value written to the status cell for this status.
func (s Status) Cell() string {
	return string(s)
}
