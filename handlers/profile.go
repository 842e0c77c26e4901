package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fritter-app/fritter-backend/models"
	"github.com/fritter-app/fritter-backend/router"
)

const maxBioLength = 140

// IsValidBio caps the bio at 140 characters. An absent or empty bio is
// allowed.
func IsValidBio() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		if utf8.RuneCountInString(rc.Body["bio"]) > maxBioLength {
			return router.TooLarge("Bio must be no more than 140 characters.")
		}
		return nil
	}
}

// IsValidPicture rejects a picture field that is present but blank.
// Omitting the field entirely is allowed.
func IsValidPicture() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		picture, present := rc.Body["picture"]
		if present && strings.TrimSpace(picture) == "" {
			return router.Validation("Picture must be a nonempty link.")
		}
		return nil
	}
}

// ProfileDoesNotExist stops a second profile for the same user.
func ProfileDoesNotExist() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		profile, err := rc.Store.FindProfileByUserID(rc.UserID)
		if err != nil {
			return router.Internal(err)
		}
		if profile != nil {
			return router.Conflict("You already have a profile.")
		}
		return nil
	}
}

// ProfileExists requires the caller to already have a profile.
func ProfileExists() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		profile, err := rc.Store.FindProfileByUserID(rc.UserID)
		if err != nil {
			return router.Internal(err)
		}
		if profile == nil {
			return router.Forbidden("You do not have a profile yet.")
		}
		return nil
	}
}

func CreateProfile() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		profile, err := rc.Store.CreateProfile(rc.UserID, rc.Body["picture"], rc.Body["bio"])
		if err != nil {
			if isDuplicate(err) {
				return router.Conflict("You already have a profile.")
			}
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusCreated, struct {
			Message string                 `json:"message"`
			Profile models.ProfileResponse `json:"profile"`
		}{
			Message: "Your profile was created successfully.",
			Profile: shapeProfile(rc, profile),
		})
	}
}

// GetProfiles returns every profile, or a single user's profile when
// the userId query parameter is present.
func GetProfiles() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		raw := r.URL.Query().Get("userId")
		if raw == "" {
			profiles, err := rc.Store.FindAllProfiles()
			if err != nil {
				return router.Internal(err)
			}
			shaped := make([]models.ProfileResponse, 0, len(profiles))
			for _, p := range profiles {
				shaped = append(shaped, shapeProfile(rc, p))
			}
			return router.WriteJSON(w, http.StatusOK, shaped)
		}

		userID, err := strconv.Atoi(raw)
		if err != nil {
			return router.NotFound("A user with user ID " + raw + " does not exist.")
		}
		user, err := rc.Store.FindUserByID(userID)
		if err != nil {
			return router.Internal(err)
		}
		if user == nil {
			return router.NotFound("A user with user ID " + raw + " does not exist.")
		}
		profile, err := rc.Store.FindProfileByUserID(userID)
		if err != nil {
			return router.Internal(err)
		}
		if profile == nil {
			return router.NotFound("User " + user.Username + " does not have a profile.")
		}
		return router.WriteJSON(w, http.StatusOK, shapeProfile(rc, *profile))
	}
}

// UpdateProfile patches only the fields present in the request body, so
// an update that names just the bio leaves the picture untouched.
func UpdateProfile() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		var bio, picture *string
		if v, present := rc.Body["bio"]; present {
			bio = &v
		}
		if v, present := rc.Body["picture"]; present {
			picture = &v
		}
		profile, err := rc.Store.UpdateProfile(rc.UserID, bio, picture)
		if err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusOK, struct {
			Message string                 `json:"message"`
			Profile models.ProfileResponse `json:"profile"`
		}{
			Message: "Your profile was updated successfully.",
			Profile: shapeProfile(rc, profile),
		})
	}
}

func DeleteProfile() router.Handler {
	return func(rc *router.RequestContext, w http.ResponseWriter, r *http.Request) *router.HTTPError {
		if err := rc.Store.DeleteProfile(rc.UserID); err != nil {
			return router.Internal(err)
		}
		return router.WriteJSON(w, http.StatusOK, messageResponse{
			Message: "Your profile has been deleted successfully.",
		})
	}
}

func shapeProfile(rc *router.RequestContext, p models.Profile) models.ProfileResponse {
	username := ""
	if user, err := rc.Store.FindUserByID(p.UserID); err == nil && user != nil {
		username = user.Username
	}
	return models.ProfileResponse{
		ID:      p.ID,
		User:    username,
		Picture: p.Picture,
		Bio:     p.Bio,
	}
}
