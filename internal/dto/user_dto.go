package dto

// UserRequest covers both create and partial update. Pointer fields
// distinguish "absent" from "set to empty": an omitted password on
// update leaves the stored hash alone.
type UserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	Status    *string `json:"status"`
	Profile   *string `json:"profile"`
}
