package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"mentorhub/db"
	"mentorhub/models"
	"mentorhub/utils"
)

// GetProfile returns the authenticated user's display profile.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	return c.JSON(profile)
}

type UpdateProfileInput struct {
	FullName *string `json:"full_name"`
	Bio      *string `json:"bio"`
}

// UpdateProfile updates the caller's profile, creating it if registration
// somehow skipped it. Absent fields are left untouched.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(UpdateProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var profile models.Profile
	if db.DB.Where("user_id = ?", userID).First(&profile).RowsAffected == 0 {
		profile = models.Profile{UserID: userID}
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.Bio != nil {
		profile.Bio = input.Bio
	}

	if err := db.DB.Save(&profile).Error; err != nil {
		log.Printf("Error saving profile for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.JSON(profile)
}

// UploadAvatar stores the uploaded image in Cloudinary and saves its URL on
// the caller's profile.
func UploadAvatar(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No avatar file provided",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read avatar file",
		})
	}
	defer file.Close()

	url, err := utils.UploadAvatar(file, fmt.Sprintf("user-%d", userID))
	if err != nil {
		log.Printf("Error uploading avatar for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload avatar",
		})
	}

	var profile models.Profile
	if db.DB.Where("user_id = ?", userID).First(&profile).RowsAffected == 0 {
		profile = models.Profile{UserID: userID}
	}
	profile.AvatarURL = &url

	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save avatar URL",
		})
	}

	return c.JSON(fiber.Map{
		"avatar_url": url,
	})
}

type SkillInput struct {
	Skill    string `json:"skill"`
	Category string `json:"category"`
}

// AddSkill attaches a skill tag to the mentor's profile.
func AddSkill(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(SkillInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Skill == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Skill name is required",
		})
	}

	skill := models.MentorSkill{
		MentorID: userID,
		Skill:    input.Skill,
		Category: input.Category,
	}
	if err := db.DB.Create(&skill).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add skill",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(skill)
}

// RemoveSkill deletes one of the mentor's own skill tags.
func RemoveSkill(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	skillID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid skill ID",
		})
	}

	result := db.DB.Where("id = ? AND mentor_id = ?", skillID, userID).
		Delete(&models.MentorSkill{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove skill",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Skill not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Skill removed",
	})
}

// ListSkills returns the caller's skill tags.
func ListSkills(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var skills []models.MentorSkill
	if err := db.DB.Where("mentor_id = ?", userID).Find(&skills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch skills",
		})
	}

	return c.JSON(skills)
}
