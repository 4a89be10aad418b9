package user

// RegisterRequest creates a new account.
type RegisterRequest struct {
	FullName  string `json:"full_name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	ContactNo string `json:"contact_no" validate:"omitempty,max=20"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateRequest changes profile fields; omitted fields stay as they are.
type UpdateRequest struct {
	FullName  *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	ContactNo *string `json:"contact_no" validate:"omitempty,max=20"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=72"`
}

// AssignRoleRequest replaces an account's active role.
type AssignRoleRequest struct {
	RoleID string `json:"role_id" validate:"required,uuid"`
}
