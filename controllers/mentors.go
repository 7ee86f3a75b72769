package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"mentorhub/db"
	"mentorhub/models"
)

// ListMentors returns a paginated mentor directory with profile and skills.
// Supports ?search= on name and ?skill= on skill tags.
func ListMentors(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleMentor)

	if search := c.Query("search"); search != "" {
		query = query.Where("users.name LIKE ?", "%"+search+"%")
	}
	if skill := c.Query("skill"); skill != "" {
		query = query.
			Joins("JOIN mentor_skills ON mentor_skills.mentor_id = users.id").
			Where("mentor_skills.skill LIKE ?", "%"+skill+"%")
	}

	var total int64
	if err := query.Distinct("users.id").Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count mentors",
		})
	}

	var mentors []models.User
	err := query.
		Preload("Profile").
		Preload("Skills").
		Distinct().
		Offset(offset).
		Limit(limit).
		Find(&mentors).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch mentors",
		})
	}

	for i := range mentors {
		mentors[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"mentors": mentors,
		"meta": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// GetMentor returns one mentor with profile, skills and weekly availability.
func GetMentor(c *fiber.Ctx) error {
	mentorID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid mentor ID",
		})
	}

	var mentor models.User
	err = db.DB.
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleMentor).
		Preload("Profile").
		Preload("Skills").
		Preload("Availability").
		First(&mentor, "users.id = ?", mentorID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Mentor not found",
		})
	}

	mentor.Password = ""
	return c.JSON(mentor)
}
