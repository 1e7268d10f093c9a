package dto

type CreateUserDTO struct {
	FullName string   `json:"full_name" validate:"required,min=2,max=255"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    *string  `json:"phone,omitempty" validate:"omitempty,phone"`
	Password string   `json:"password" validate:"required,min=6"`
	RoleIDs  []uint64 `json:"role_ids" validate:"required,min=1,dive,gt=0"`
}

type UpdateUserDTO struct {
	FullName *string  `json:"full_name,omitempty" validate:"omitempty,min=2,max=255"`
	Phone    *string  `json:"phone,omitempty" validate:"omitempty,phone"`
	IsActive *bool    `json:"is_active,omitempty"`
	RoleIDs  []uint64 `json:"role_ids,omitempty" validate:"omitempty,min=1,dive,gt=0"`
}

type UserDTO struct {
	ID        uint64   `json:"id"`
	FullName  string   `json:"full_name"`
	Email     string   `json:"email"`
	Phone     *string  `json:"phone,omitempty"`
	Roles     []string `json:"roles"`
	IsActive  bool     `json:"is_active"`
	CreatedAt string   `json:"created_at"`
}

type ShortUserDTO struct {
	ID       uint64 `json:"id"`
	FullName string `json:"full_name"`
}

type UserListResponseDTO struct {
	List       []UserDTO `json:"list"`
	TotalCount uint64    `json:"total_count"`
}

type RoleDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type PermissionDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
