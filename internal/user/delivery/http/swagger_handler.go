package http

// CreateUser godoc
// @Summary Create a user
// @Description Registers a user; the password is stored as a bcrypt hash
// @Tags Users
// @Accept json
// @Produce json
// @Param request body command.CreateUserCommand true "User data"
// @Success 201 {object} domain.User
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /users [post]
func (h *UserHandler) CreateUserDoc() {}

// ListUsers godoc
// @Summary List active users
// @Tags Users
// @Produce json
// @Success 200 {array} domain.User
// @Failure 500 {object} object{error=string}
// @Router /users [get]
func (h *UserHandler) ListUsersDoc() {}

// GetUser godoc
// @Summary Get a user
// @Description Returns the user whether or not it is active
// @Tags Users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} domain.User
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [get]
func (h *UserHandler) GetUserDoc() {}

// UpdateUser godoc
// @Summary Update a user
// @Description Partial update; omitted fields keep their value
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param request body command.UpdateUserCommand true "Fields to change"
// @Success 200 {object} domain.User
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUserDoc() {}

// DeleteUser godoc
// @Summary Soft delete a user
// @Description Marks the user inactive
// @Tags Users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUserDoc() {}
