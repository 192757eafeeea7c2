package dto

// UpdateUserRequest is the mutation whitelist for PUT /users/:id. Nil
// means "leave unchanged"; at least one field must be set.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Status    *int    `json:"status"`
}

func (r *UpdateUserRequest) Empty() bool {
	return r.Email == nil && r.FirstName == nil && r.LastName == nil &&
		r.Phone == nil && r.Status == nil
}

type CreateAdminRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Country   string `json:"country"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Timezone  string `json:"timezone"`
	RoleID    *int64 `json:"role_id"`
}
