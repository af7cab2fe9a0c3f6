// Package schema resolves logical lead fields against spreadsheet headers.
package schema

import "strings"

// ResolveColumn returns the index of the first header cell matching any of the
// candidate names, or -1 when nothing matches.
//
// A header cell matches a candidate when, after trimming and case folding, it
// equals the candidate or contains it. Headers are scanned in order and the
// first matching header position wins regardless of candidate order.
func ResolveColumn(header []string, candidates ...string) int {
	for i, cell := range header {
		h := strings.ToLower(strings.TrimSpace(cell))
		if h == "" {
			continue
		}
		for _, name := range candidates {
			n := strings.ToLower(name)
			if h == n || strings.Contains(h, n) {
				return i
			}
		}
	}
	return -1
}

// Field is a logical column resolved by name matching.
type Field struct {
	// Name is the canonical header used when a sheet is created from scratch.
	Name string
	// Candidates are the names accepted when resolving the field.
	Candidates []string
}

// Index resolves the field against header.
func (f Field) Index(header []string) int {
	return ResolveColumn(header, f.Candidates...)
}

// Logical fields recognised in master and tracking sheets.
var (
	ID                  = Field{Name: "ID", Candidates: []string{"ID", "Folio"}}
	Phone               = Field{Name: "Phone", Candidates: []string{"Phone", "Telefono", "Number"}}
	FirstName           = Field{Name: "FirstName", Candidates: []string{"FirstName"}}
	LastName            = Field{Name: "LastName", Candidates: []string{"LastName"}}
	Address             = Field{Name: "Address", Candidates: []string{"Address"}}
	City                = Field{Name: "City", Candidates: []string{"City"}}
	State               = Field{Name: "State", Candidates: []string{"State"}}
	ZipCode             = Field{Name: "ZipCode", Candidates: []string{"ZipCode"}}
	Classification      = Field{Name: "Classification", Candidates: []string{"Classification"}}
	Level               = Field{Name: "Level", Candidates: []string{"Level", "Nivel"}}
	Status              = Field{Name: "Status", Candidates: []string{"Status", "Estado", "Estatus"}}
	AssignedTo          = Field{Name: "AssignedTo", Candidates: []string{"AssignedTo", "Asignado"}}
	Role                = Field{Name: "Role", Candidates: []string{"Role", "Rol"}}
	Comments            = Field{Name: "Comments_Analyst", Candidates: []string{"Comments_Analyst", "Comentarios", "Comments"}}
	CommentsCoordinator = Field{Name: "Comments_Coordinator", Candidates: []string{"Comments_Coordinator"}}
	CommentsManager     = Field{Name: "Comments_Manager", Candidates: []string{"Comments_Manager"}}
	LeadSource          = Field{Name: "LeadSource", Candidates: []string{"LeadSource"}}
)

// StandardFields is the column set of a freshly created master sheet, in order.
var StandardFields = []Field{
	ID, Phone, FirstName, LastName, Address, City, State, ZipCode,
	Classification, Level, Status, AssignedTo, Role,
	Comments, CommentsCoordinator, CommentsManager, LeadSource,
}

// StandardHeader returns the header row of a freshly created master sheet.
func StandardHeader() []string {
	header := make([]string, len(StandardFields))
	for i, f := range StandardFields {
		header[i] = f.Name
	}
	return header
}
