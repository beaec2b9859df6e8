package sharing

type Scope string

const (
	ScopeAll  Scope = "all"
	ScopeMine Scope = "my-items"
)

type BrowseReq struct {
	Scope  Scope
	Search string
}

type ToolView struct {
	ID          int64
	Name        string
	Description string
	ImageURL    string
	OwnerID     int64
	OwnerName   string
	OwnerEmail  string // contact address, falls back to the owner's email
	Mine        bool
}

type CreateReq struct {
	ToolName    string
	Description string
	ImageURL    string
}
