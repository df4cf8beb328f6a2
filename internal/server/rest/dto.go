package rest

import "github.com/dmitrijs2005/radar/internal/server/models"

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (r updateUserRequest) toModel() models.UserUpdate {
	return models.UserUpdate{Email: r.Email, Password: r.Password}
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func toUserResponse(u models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email}
}

type usersResponse struct {
	Users []userResponse `json:"users"`
}

func toUsersResponse(list []models.User) usersResponse {
	out := usersResponse{Users: make([]userResponse, 0, len(list))}
	for _, u := range list {
		out.Users = append(out.Users, toUserResponse(u))
	}
	return out
}

type messageResponse struct {
	Message string `json:"message"`
}
