package dto

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student recruiter admin"`
}
