package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/sidapp/mongo-user-service/internal/application"
	"github.com/sidapp/mongo-user-service/internal/domain/entity"
	"github.com/sidapp/mongo-user-service/pkg/response"
	"github.com/sidapp/mongo-user-service/pkg/validation"
)

// API base paths.
const (
	BaseAPIPath  = "/api/v1"
	UsersAPIPath = BaseAPIPath + "/users"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// log returns an entry scoped to the current request, carrying the
// request_id set by the request-id middleware when one is present.
func (h *UserHandler) log(c *gin.Context) *logrus.Entry {
	if id := c.GetString("request_id"); id != "" {
		return h.Logger.WithField("request_id", id)
	}
	return logrus.NewEntry(h.Logger)
}

type userRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
	Status  string `json:"status"`
	Address string `json:"address"`
}

func (r *userRequest) toEntity() *entity.User {
	return &entity.User{
		ID:      r.ID,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Role:    r.Role,
		Status:  r.Status,
		Address: r.Address,
	}
}

// userResponse renders timestamps as fixed-format UTC strings.
type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	Status    string `json:"status,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func toUserResponse(u *entity.User) userResponse {
	out := userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Role:    u.Role,
		Status:  u.Status,
		Address: u.Address,
	}
	if !u.CreatedAt.IsZero() {
		out.CreatedAt = response.FormatTime(u.CreatedAt)
	}
	if !u.UpdatedAt.IsZero() {
		out.UpdatedAt = response.FormatTime(u.UpdatedAt)
	}
	return out
}

func toUserResponses(users []entity.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

// List handles GET /users. At most one derived-lookup filter applies per
// request; with no filter it returns the full collection.
func (h *UserHandler) List(c *gin.Context) {
	h.log(c).Info("fetching users")
	ctx := c.Request.Context()

	var (
		users []entity.User
		err   error
	)
	switch {
	case c.Query("email") != "":
		users, err = h.Svc.FindByEmail(ctx, c.Query("email"))
	case c.Query("role") != "":
		users, err = h.Svc.FindByRole(ctx, c.Query("role"))
	case c.Query("status") != "":
		users, err = h.Svc.FindByStatus(ctx, c.Query("status"))
	case c.Query("name") != "":
		users, err = h.Svc.SearchByName(ctx, c.Query("name"))
	case c.Query("domain") != "":
		users, err = h.Svc.FindByEmailDomain(ctx, c.Query("domain"))
	case c.Query("createdAfter") != "":
		var after time.Time
		after, err = time.Parse(time.RFC3339, c.Query("createdAfter"))
		if err != nil {
			RespondError(c, h.log(c), &userapp.ConstraintViolationError{
				Msg: "createdAfter must be an RFC3339 timestamp",
			})
			return
		}
		users, err = h.Svc.FindCreatedAfter(ctx, after)
	default:
		users, err = h.Svc.FindAll(ctx)
	}
	if err != nil {
		RespondError(c, h.log(c), err)
		return
	}
	response.Success(c, http.StatusOK, response.MsgUsersFetched, toUserResponses(users))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")
	h.log(c).WithField("id", id).Info("fetching user")

	u, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		RespondError(c, h.log(c), err)
		return
	}
	response.Success(c, http.StatusOK, response.MsgUserFetched, toUserResponse(u))
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, h.log(c), &userapp.InvalidArgumentError{Msg: "Malformed request body"})
		return
	}
	candidate := req.toEntity()
	if verr := validation.ValidateUser(candidate); verr != nil {
		RespondError(c, h.log(c), verr)
		return
	}
	h.log(c).WithFields(logrus.Fields{"email": candidate.Email, "role": candidate.Role}).Info("creating new user")

	created, err := h.Svc.Create(c.Request.Context(), candidate)
	if err != nil {
		RespondError(c, h.log(c), err)
		return
	}
	c.Header("Location", UsersAPIPath+"/"+created.ID)
	response.Success(c, http.StatusCreated, response.MsgUserCreated, toUserResponse(created))
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, h.log(c), &userapp.InvalidArgumentError{Msg: "Malformed request body"})
		return
	}
	candidate := req.toEntity()
	if verr := validation.ValidateUser(candidate); verr != nil {
		RespondError(c, h.log(c), verr)
		return
	}
	h.log(c).WithField("id", id).Info("updating user")

	updated, err := h.Svc.Update(c.Request.Context(), id, candidate)
	if err != nil {
		RespondError(c, h.log(c), err)
		return
	}
	response.Success(c, http.StatusOK, response.MsgUserUpdated, toUserResponse(updated))
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.log(c).WithField("id", id).Info("deleting user")

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, h.log(c), err)
		return
	}
	response.Success[any](c, http.StatusOK, response.MsgUserDeleted, nil)
}
