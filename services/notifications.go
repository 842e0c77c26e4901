package services

import (
	"context"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/fritter-app/fritter-backend/db"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

var (
	messagingClient *messaging.Client
	once            sync.Once
	initError       error
)

// InitFirebase initializes the FCM messaging client. Safe to call more
// than once; only the first call does work.
func InitFirebase(credentialsPath string) error {
	once.Do(func() {
		ctx := context.Background()

		opt := option.WithCredentialsFile(credentialsPath)
		app, err := firebase.NewApp(ctx, nil, opt)
		if err != nil {
			initError = err
			logrus.WithError(err).Error("fcm: failed to init firebase app")
			return
		}

		messagingClient, err = app.Messaging(ctx)
		if err != nil {
			initError = err
			logrus.WithError(err).Error("fcm: failed to get messaging client")
			return
		}

		logrus.Info("fcm: messaging client initialized")
	})

	return initError
}

// Notifier delivers best-effort push notifications. Failures are logged,
// never surfaced to the request that triggered them.
type Notifier interface {
	NotifyNewFollower(followeeID int, followerUsername string)
	NotifyNewReply(freetAuthorID int, replierUsername, content string)
}

// FCMNotifier sends pushes to every device token registered for a user.
type FCMNotifier struct {
	tokens db.DeviceTokenStore
}

func NewFCMNotifier(tokens db.DeviceTokenStore) *FCMNotifier {
	return &FCMNotifier{tokens: tokens}
}

func (n *FCMNotifier) NotifyNewFollower(followeeID int, followerUsername string) {
	n.send(followeeID, "New Follower",
		followerUsername+" started following you!",
		map[string]string{"type": "new_follower", "follower": followerUsername})
}

func (n *FCMNotifier) NotifyNewReply(freetAuthorID int, replierUsername, content string) {
	body := content
	if len(body) > 100 {
		body = body[:97] + "..."
	}
	n.send(freetAuthorID, replierUsername+" replied to your freet", body,
		map[string]string{"type": "new_reply", "replier": replierUsername})
}

func (n *FCMNotifier) send(userID int, title, body string, data map[string]string) {
	if messagingClient == nil {
		return
	}

	tokens, err := n.tokens.DeviceTokensByUserID(userID)
	if err != nil {
		logrus.WithError(err).Error("fcm: fetching device tokens")
		return
	}
	if len(tokens) == 0 {
		return
	}

	message := &messaging.MulticastMessage{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:   data,
		Tokens: tokens,
	}

	response, err := messagingClient.SendEachForMulticast(context.Background(), message)
	if err != nil {
		logrus.WithError(err).Error("fcm: multicast send failed")
		return
	}

	logrus.WithFields(logrus.Fields{
		"success": response.SuccessCount,
		"failure": response.FailureCount,
	}).Debug("fcm: multicast result")

	for i, resp := range response.Responses {
		if resp.Success {
			continue
		}
		if messaging.IsUnregistered(resp.Error) {
			if err := n.tokens.DeleteDeviceToken(tokens[i]); err != nil {
				logrus.WithError(err).Error("fcm: deleting dead token")
			}
		}
	}
}
