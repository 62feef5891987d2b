package server

import (
	"log/slog"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "inkwell-api"
	tokenAudience = "inkwell-client"
	tokenTTL      = 24 * time.Hour
	bcryptCost    = 12
)

type registerRequest struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateName(req.Name); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if req.Password != req.ConfirmPassword {
		return models.RespondWithError(c,
			models.NewValidationError("Passwords do not match"))
	}

	existing, err := s.userRepo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		return models.RespondWithError(c,
			models.NewInternalError("Failed to register user", err))
	}
	if existing != nil {
		return models.RespondWithError(c,
			models.NewConflictError("A user with this email already exists"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return models.RespondWithError(c,
			models.NewInternalError("Failed to register user", err))
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(c.UserContext(), user); err != nil {
		return models.RespondWithError(c,
			models.NewInternalError("Failed to register user", err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		slog.Uint64("user_id", uint64(user.ID)))

	return models.Respond(c, fiber.StatusCreated, "Successfully Registered User",
		fiber.Map{"id": user.ID})
}

// Login verifies credentials and issues a signed token
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Email and password are required"))
	}

	user, err := s.userRepo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		return models.RespondWithError(c,
			models.NewInternalError("Failed to log in", err))
	}
	if user == nil {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid email or password"))
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid email or password"))
	}

	token, err := s.generateToken(user)
	if err != nil {
		return models.RespondWithError(c,
			models.NewInternalError("Failed to log in", err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user logged in",
		slog.Uint64("user_id", uint64(user.ID)))

	return models.Respond(c, fiber.StatusOK, "Login Successful", fiber.Map{
		"token": token,
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// Logout revokes the presented token by blacklisting its JTI until expiry
func (s *Server) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	tokenString := ""
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		tokenString = authHeader[7:]
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(s.config.JWTSecret), nil
	})
	if err == nil && token.Valid {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			jti, _ := claims["jti"].(string)
			if jti != "" && s.redis != nil {
				ttl := tokenTTL
				if exp, expOk := claims["exp"].(float64); expOk {
					until := time.Until(time.Unix(int64(exp), 0))
					if until > 0 {
						ttl = until
					}
				}
				if err := s.redis.Set(c.Context(),
					"blacklist:"+jti, "1", ttl).Err(); err != nil {
					middleware.Logger.WarnContext(c.UserContext(),
						"failed to blacklist token", slog.Any("error", err))
				}
			}
		}
	}

	return models.Respond(c, fiber.StatusOK, "Logged Out Successfully", nil)
}

func (s *Server) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   jwtSubject(user.ID),
		"email": user.Email,
		"iss":   tokenIssuer,
		"aud":   tokenAudience,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
