// handlers/auth.go
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"plantmaint/config"
	"plantmaint/middleware"
	"plantmaint/models"
)

type registerReq struct {
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     string     `json:"role"`
	PlantID  *uuid.UUID `json:"plant_id"`
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPayload struct {
	ID       uuid.UUID  `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	PlantID  *uuid.UUID `json:"plant_id,omitempty"`
}

type loginResp struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

// Register is the public self-service signup. Accounts always start as
// technician; elevated roles are granted through the admin user endpoint.
func Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Role != "" && req.Role != models.RoleTechnician {
		http.Error(w, "role cannot be chosen at registration", http.StatusBadRequest)
		return
	}
	req.Role = models.RoleTechnician
	createUser(w, req)
}

// CreateUser is the admin path for provisioning accounts with any role.
func CreateUser(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = models.RoleTechnician
	}
	if !models.ValidRole(req.Role) {
		http.Error(w, "invalid role", http.StatusBadRequest)
		return
	}
	createUser(w, req)
}

func createUser(w http.ResponseWriter, req registerReq) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "username, email and password are required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "error hashing password", http.StatusInternalServerError)
		return
	}
	u := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		PlantID:      req.PlantID,
	}
	if err := config.DB.Create(&u).Error; err != nil {
		if isDuplicateKey(err) {
			http.Error(w, "username or email already taken", http.StatusBadRequest)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, userPayload{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		PlantID:  u.PlantID,
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	var u models.User
	if err := config.DB.Where("username = ?", req.Username).First(&u).Error; err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	token, err := middleware.GenerateToken(u.ID.String(), u.Username, u.Role)
	if err != nil {
		http.Error(w, "couldn't create token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, loginResp{
		Token: token,
		User: userPayload{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Role:     u.Role,
			PlantID:  u.PlantID,
		},
	})
}

func Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	var u models.User
	if err := config.DB.First(&u, "id = ?", claims.UserID).Error; err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, userPayload{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		PlantID:  u.PlantID,
	})
}

// Logout denylists the token's jti until its expiry when redis is
// configured. Without redis the token simply remains valid client-side until
// it expires; the endpoint still answers 200 so clients behave uniformly.
func Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	if config.RDB != nil && claims.ID != "" && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if ttl > 0 {
			if err := config.RDB.Set(r.Context(), middleware.DenylistKey(claims.ID), "1", ttl).Err(); err != nil {
				http.Error(w, "could not revoke token", http.StatusInternalServerError)
				return
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

type changePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.NewPassword == "" {
		http.Error(w, "new password is required", http.StatusBadRequest)
		return
	}

	var u models.User
	if err := config.DB.First(&u, "id = ?", middleware.GetUserID(r)).Error; err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.OldPassword)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "error hashing password", http.StatusInternalServerError)
		return
	}
	if err := config.DB.Model(&u).Update("password_hash", string(hash)).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "password changed"})
}

// GetAllUsers lists accounts for the admin screens.
func GetAllUsers(w http.ResponseWriter, r *http.Request) {
	params, ok := listParamsChecked(w, r, "role", "plant_id")
	if !ok {
		return
	}

	q := params.Scope(config.DB.Model(&models.User{}))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var users []models.User
	if err := q.Limit(params.Limit).Offset(params.Offset()).Order("created_at DESC").Find(&users).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]userPayload, len(users))
	for i, u := range users {
		out[i] = userPayload{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role, PlantID: u.PlantID}
	}
	writeList(w, total, params, out)
}
