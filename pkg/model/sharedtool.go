package model

type ToolOwner struct {
	StudentID int64  `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type SharedTool struct {
	ToolID       int64     `json:"toolId"`
	ToolName     string    `json:"toolName"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Owner        ToolOwner `json:"owner"`
	ContactEmail string    `json:"contactEmail"`
}

// Contact prefers the explicit contact address, falling back to the owner's.
func (t *SharedTool) Contact() string {
	if t.ContactEmail != "" {
		return t.ContactEmail
	}
	return t.Owner.Email
}

type CreateSharedToolRequest struct {
	ToolName       string `json:"toolName"`
	Description    string `json:"description"`
	ImageURL       string `json:"imageUrl,omitempty"`
	OwnerStudentID int64  `json:"ownerStudentId"`
}
