package service

import (
	"context"
	"encoding/json"

	"gamepal/internal/domain"
	"gamepal/internal/models"
	"gamepal/internal/repository"
	"gamepal/internal/ws"
)

// NotificationService persists a notification, streams it to any live
// websocket connections, and pushes via FCM when configured.
type NotificationService struct {
	repo     *repository.NotificationRepository
	userRepo *repository.UserRepository
	hub      *ws.Hub
	fcm      *FCMService
}

func NewNotificationService(repo *repository.NotificationRepository, userRepo *repository.UserRepository, hub *ws.Hub, fcm *FCMService) *NotificationService {
	return &NotificationService{repo: repo, userRepo: userRepo, hub: hub, fcm: fcm}
}

func (s *NotificationService) Notify(userID uint, notifType, title, body string, data map[string]interface{}) error {
	var dataJSON string
	if data != nil {
		b, _ := json.Marshal(data)
		dataJSON = string(b)
	}
	n := &models.Notification{
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
		Data:   dataJSON,
	}
	if err := s.repo.Create(n); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.SendToUser(userID, n)
	}
	s.sendPush(userID, notifType, title, body)
	return nil
}

func (s *NotificationService) sendPush(userID uint, notifType, title, body string) {
	if s.fcm == nil || s.userRepo == nil {
		return
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil || u.FCMToken == "" {
		return
	}
	_ = s.fcm.Send(context.Background(), u.FCMToken, notifType, title, body)
}

func (s *NotificationService) NotifyLike(postOwnerID, postID uint, likerName string) error {
	return s.Notify(postOwnerID, domain.NotifLike, "New like",
		likerName+" liked your post", map[string]interface{}{"post_id": postID})
}

func (s *NotificationService) NotifyComment(postOwnerID, postID uint, commenterName string) error {
	return s.Notify(postOwnerID, domain.NotifComment, "New comment",
		commenterName+" commented on your post", map[string]interface{}{"post_id": postID})
}

func (s *NotificationService) NotifyFollow(followeeID, followerID uint, followerName string) error {
	return s.Notify(followeeID, domain.NotifFollow, "New follower",
		followerName+" started following you", map[string]interface{}{"follower_id": followerID})
}

func (s *NotificationService) NotifyAchievement(userID uint, a *models.Achievement) error {
	return s.Notify(userID, domain.NotifAchievement, "Achievement unlocked",
		"You earned \""+a.Name+"\"", map[string]interface{}{"achievement_id": a.ID, "code": a.Code})
}

func (s *NotificationService) NotifyEventJoin(creatorID, eventID uint, joinerName, eventTitle string) error {
	return s.Notify(creatorID, domain.NotifEvent, "Event signup",
		joinerName+" joined "+eventTitle, map[string]interface{}{"event_id": eventID})
}
