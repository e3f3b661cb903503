package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haverststudio-backend/analytics"
)

// GetNotifications retrieves the feed plus the unread badge count
func (ctrl *Controller) GetNotifications(c *gin.Context) {
	notifications := ctrl.Store.Notifications()
	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread":        analytics.UnreadCount(notifications),
	})
}

// MarkNotificationRead flags one notification as read
func (ctrl *Controller) MarkNotificationRead(c *gin.Context) {
	updated, err := ctrl.Store.MarkNotificationRead(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Notification not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// MarkAllNotificationsRead clears the unread badge
func (ctrl *Controller) MarkAllNotificationsRead(c *gin.Context) {
	if err := ctrl.Store.MarkAllNotificationsRead(); err != nil {
		respondStoreError(c, err, "Notification not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
