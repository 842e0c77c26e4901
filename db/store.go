package db

import "github.com/fritter-app/fritter-backend/models"

// Store bundles the per-slice record stores. Handlers depend on this
// interface so tests can swap in the in-memory mock.
//
// Find* methods return (nil, nil) when no record matches; errors are
// reserved for the store itself failing.
type Store interface {
	UserStore
	FreetStore
	BarrierStore
	FollowingStore
	InteractionStore
	ProfileStore
	DeviceTokenStore
}

// UserStore is the user-account collaborator surface. FindUserByID and
// FindUserByUsername double as the read-through resolver the response
// shapers use to turn ids into usernames.
type UserStore interface {
	CreateUser(username, passwordHash string) (models.User, error)
	FindUserByID(id int) (*models.User, error)
	FindUserByUsername(username string) (*models.User, error)
	DeleteUser(id int) error
}

type FreetStore interface {
	CreateFreet(authorID int, content string) (models.Freet, error)
	FindFreetByID(id int) (*models.Freet, error)
	FindAllFreets() ([]models.Freet, error)
	FindFreetsByAuthorID(authorID int) ([]models.Freet, error)
	DeleteFreet(id int) error
}

type BarrierStore interface {
	CreateBarrier(username, passcode string) (models.FollowerBarrier, error)
	FindBarrierByUsername(username string) (*models.FollowerBarrier, error)
	UpdateBarrierPasscode(username, passcode string) (models.FollowerBarrier, error)
	DeleteBarrier(username string) error
}

type FollowingStore interface {
	CreateFollowing(follower, followee string) (models.Following, error)
	FindEdge(follower, followee string) (*models.Following, error)
	ListFollowing(username string) ([]models.Following, error)
	ListFollowers(username string) ([]models.Following, error)
	DeleteEdge(follower, followee string) error
	DeleteAllByFollower(username string) error
	DeleteAllByFollowee(username string) error
}

type InteractionStore interface {
	CreateInteraction(authorID int, interactionType string, freetID int, content string) (models.Interaction, error)
	FindAllInteractions() ([]models.Interaction, error)
	FindInteractionByID(id int) (*models.Interaction, error)
	FindInteractionsByFreetID(freetID int) ([]models.Interaction, error)
	FindInteractionsByAuthorID(authorID int) ([]models.Interaction, error)
	CountInteractionsByType(freetID int, interactionType string) (int, error)
	HasLikeOrDislike(authorID, freetID int) (bool, error)
	UpdateInteractionContent(id int, content string) (models.Interaction, error)
	DeleteInteraction(id int) error
	DeleteAllByFreetID(freetID int) error
}

type ProfileStore interface {
	CreateProfile(userID int, picture, bio string) (models.Profile, error)
	FindProfileByUserID(userID int) (*models.Profile, error)
	FindAllProfiles() ([]models.Profile, error)
	UpdateProfile(userID int, bio, picture *string) (models.Profile, error)
	DeleteProfile(userID int) error
}

// DeviceTokenStore keeps FCM device tokens for push notifications.
type DeviceTokenStore interface {
	SaveDeviceToken(userID int, token string) error
	DeviceTokensByUserID(userID int) ([]string, error)
	DeleteDeviceToken(token string) error
}
