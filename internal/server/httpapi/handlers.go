package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunchboxd/lunchboxd-server/internal/common"
	"github.com/lunchboxd/lunchboxd-server/internal/server/models"
	"github.com/lunchboxd/lunchboxd-server/internal/server/services"
)

// RegisterRequest is the JSON body for POST /api/auth/register.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Mobile    string `json:"mobile"`
	Avatar    string `json:"avatar"`
	Password  string `json:"password" binding:"required"`
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// writeError maps the shared error taxonomy onto transport status codes.
// Unauthorized and Unauthenticated deliberately present identically.
func (s *HTTPServer) writeError(c *gin.Context, err error) {
	s.logger.Error(c.Request.Context(), err.Error(), "path", c.FullPath())

	switch {
	case errors.Is(err, common.ErrorConflict):
		c.JSON(http.StatusBadRequest, gin.H{"detail": common.ErrorConflict.Error()})
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrorUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
	case errors.Is(err, common.ErrorForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": "Not authorized"})
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrInvalidIdentifier):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
	case errors.Is(err, common.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}

func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	candidate := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Mobile:    req.Mobile,
		Avatar:    req.Avatar,
		Password:  req.Password,
	}

	user, token, err := s.auth.Register(c.Request.Context(), candidate)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "username", user.Username)
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	user, token, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func (s *HTTPServer) listRestaurants(c *gin.Context) {
	params := services.SearchParams{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Budgets:  c.Query("budgets"),
		Sides:    c.Query("sides"),
	}

	docs, err := s.restaurants.Search(c.Request.Context(), params)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": docs})
}

func (s *HTTPServer) createRestaurant(c *gin.Context) {
	var r models.Restaurant
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	id, err := s.restaurants.Create(c.Request.Context(), &r)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Restaurant created"})
}

func (s *HTTPServer) filterOptions(c *gin.Context) {
	opts, err := s.restaurants.Options(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, opts)
}

func (s *HTTPServer) addFavorite(c *gin.Context) {
	var fav models.Favorite
	if err := c.ShouldBindJSON(&fav); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	// the link must belong to the requester
	if err := s.auth.Authorize(currentUser(c), fav.UserID); err != nil {
		s.writeError(c, err)
		return
	}

	added, err := s.favorites.Add(c.Request.Context(), fav.UserID, fav.RestaurantID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	if !added {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Already in favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to favorites"})
}

func (s *HTTPServer) listFavorites(c *gin.Context) {
	docs, err := s.favorites.Resolve(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": docs})
}

func (s *HTTPServer) createUpload(c *gin.Context) {
	key, url, err := s.media.PresignedUploadURL(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key, "uploadUrl": url})
}

func (s *HTTPServer) getUpload(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "key is required"})
		return
	}

	url, err := s.media.PresignedDownloadURL(c.Request.Context(), key)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
