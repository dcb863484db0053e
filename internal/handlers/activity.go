package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mergington-dev/activities/db"
	"github.com/mergington-dev/activities/internal/models"
	"gorm.io/gorm"
)

type StudentQuery struct {
	Email string `form:"email" binding:"required"`
}

type ActivityDetail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func ListActivities(ctx *gin.Context) {
	var activities []models.Activity

	err := db.DB.Preload("Participants", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("participants.id ASC")
	}).Find(&activities).Error

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activities"})
		return
	}

	response := make(map[string]ActivityDetail, len(activities))

	for _, activity := range activities {
		emails := make([]string, 0, len(activity.Participants))

		for _, participant := range activity.Participants {
			emails = append(emails, participant.Email)
		}

		response[activity.Name] = ActivityDetail{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    emails,
		}
	}

	ctx.JSON(http.StatusOK, response)
}

func SignupForActivity(ctx *gin.Context) {
	name := ctx.Param("name")

	var query StudentQuery

	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	tx := db.DB.Begin()

	if tx.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up for activity"})
		return
	}

	var activity models.Activity

	if err := tx.Where("name = ?", name).First(&activity).Error; err != nil {
		tx.Rollback()

		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity"})
		}
		return
	}

	var existing models.Participant

	err := tx.Where("activity_id = ? AND email = ?", activity.ID, query.Email).First(&existing).Error

	if err == nil {
		tx.Rollback()
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Student is already signed up"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve participants"})
		return
	}

	if activity.MaxParticipants > 0 {
		var count int64

		if err := tx.Model(&models.Participant{}).Where("activity_id = ?", activity.ID).Count(&count).Error; err != nil {
			tx.Rollback()
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve participants"})
			return
		}

		if count >= int64(activity.MaxParticipants) {
			tx.Rollback()
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Activity is at capacity"})
			return
		}
	}

	participant := models.Participant{
		ActivityID: activity.ID,
		Email:      query.Email,
	}

	if err := tx.Create(&participant).Error; err != nil {
		tx.Rollback()

		// A concurrent signup can win the race between the duplicate check
		// and this insert; the constraint violation is the same client error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Student is already signed up"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up for activity"})
		}
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Student is already signed up"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up for activity"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Signed up %s for %s", query.Email, activity.Name)})
}

func UnregisterFromActivity(ctx *gin.Context) {
	name := ctx.Param("name")

	var query StudentQuery

	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	tx := db.DB.Begin()

	if tx.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unregister from activity"})
		return
	}

	var activity models.Activity

	if err := tx.Where("name = ?", name).First(&activity).Error; err != nil {
		tx.Rollback()

		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity"})
		}
		return
	}

	var participant models.Participant

	if err := tx.Where("activity_id = ? AND email = ?", activity.ID, query.Email).First(&participant).Error; err != nil {
		tx.Rollback()

		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Student is not signed up for this activity"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve participants"})
		}
		return
	}

	// Hard delete: a soft-deleted row would still occupy the unique index on
	// (activity_id, email) and block the student from signing up again.
	if err := tx.Unscoped().Delete(&participant).Error; err != nil {
		tx.Rollback()
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unregister from activity"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unregister from activity"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Unregistered %s from %s", query.Email, activity.Name)})
}
