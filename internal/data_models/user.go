package dto

type CreateUserRequest struct {
	UserName string `json:"userName"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     int    `json:"role"`
}

// EditUserRequest carries a partial update: nil fields are left untouched.
type EditUserRequest struct {
	ID    uint    `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *int    `json:"role"`
}

// UserRow is one row of the user listing, with the role description joined
// from the lookup table.
type UserRow struct {
	ID              uint   `json:"id"`
	UserName        string `json:"userName"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	RoleCode        int    `json:"roleCode"`
	RoleDescription string `json:"roleDescription"`
}
