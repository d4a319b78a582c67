package transport

type RegisterRequest struct {
	Name                 string `json:"name"                  validate:"required,max=255"`
	Email                string `json:"email"                 validate:"required,email,max=255"`
	Password             string `json:"password"              validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
}

type CreateProductRequest struct {
	Name        string   `json:"name"        validate:"required,max=255"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Stock       *int     `json:"stock"       validate:"required,gte=0"`
	Size        *int     `json:"size"        validate:"required,gte=1,lte=5"`
	CategoryID  *uint    `json:"category_id" validate:"required"`
	ImageURL    string   `json:"image_url"   validate:"required,url"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,max=255"`
	Description *string  `json:"description" validate:"omitempty"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
	Size        *int     `json:"size"        validate:"omitempty,gte=1,lte=5"`
	CategoryID  *uint    `json:"category_id" validate:"omitempty"`
	ImageURL    *string  `json:"image_url"   validate:"omitempty,url"`
}

// UserResponse is the public projection of a user, the password hash is
// never echoed back.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
