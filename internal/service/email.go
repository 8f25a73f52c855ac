package service

import (
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/diettrack/backend/internal/models"
	"github.com/diettrack/backend/internal/nutrition"
)

type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func NewEmailService() *EmailService {
	return &EmailService{
		smtpHost:     readSecret("smtp_host"),
		smtpPort:     readSecret("smtp_port"),
		smtpUsername: readSecret("smtp_username"),
		smtpPassword: readSecret("smtp_password"),
		fromEmail:    readSecret("email_from"),
		fromName:     readSecret("email_from_name"),
	}
}

// SendDietPlanEmail mails the user their computed goals and recommendations.
func (s *EmailService) SendDietPlanEmail(user *models.User, recs *nutrition.Recommendations) error {
	subject := "Your DietTrack Plan"
	body := s.buildDietPlanEmailBody(user, recs)
	return s.SendEmail(user.Email, subject, body)
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	// If SMTP is not configured, log the email instead
	if s.smtpHost == "" || s.smtpPort == "" {
		fmt.Printf("SMTP not configured, logging email:\n")
		fmt.Printf("To: %s\n", to)
		fmt.Printf("Subject: %s\n", subject)
		fmt.Printf("Body:\n%s\n", body)
		fmt.Printf("--- End Email ---\n")
		return nil
	}

	// Set up authentication
	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)

	// Compose message
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", to, from, subject, body))

	// Send email
	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) buildDietPlanEmailBody(user *models.User, recs *nutrition.Recommendations) string {
	caser := cases.Title(language.English)

	goal := "General Health"
	if user.FitnessGoal != "" {
		goal = caser.String(strings.ReplaceAll(user.FitnessGoal, "_", " "))
	}

	var goals string
	if user.DailyCalorieGoal != nil {
		goals = fmt.Sprintf(`
			<p><strong>Daily Targets:</strong></p>
			<ul>
				<li>Calories: %d kcal</li>
				%s
			</ul>
		`, *user.DailyCalorieGoal,
			func() string {
				if user.DailyProteinGoal == nil || user.DailyCarbsGoal == nil || user.DailyFatGoal == nil {
					return ""
				}
				return fmt.Sprintf("<li>Protein: %dg</li><li>Carbs: %dg</li><li>Fat: %dg</li>",
					*user.DailyProteinGoal, *user.DailyCarbsGoal, *user.DailyFatGoal)
			}(),
		)
	} else {
		goals = "<p>Complete your profile (weight, height, age, gender and activity level) to get daily calorie and macro targets.</p>"
	}

	section := func(title string, items []string) string {
		if len(items) == 0 {
			return ""
		}
		var b strings.Builder
		fmt.Fprintf(&b, "<h3 style=\"color: #4CAF50;\">%s</h3><ul>", title)
		for _, item := range items {
			fmt.Fprintf(&b, "<li style=\"margin-bottom: 8px;\">%s</li>", item)
		}
		b.WriteString("</ul>")
		return b.String()
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Your DietTrack Plan</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background-color: #4CAF50; color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0;">
		<h1 style="margin: 0; font-size: 28px;">DietTrack</h1>
		<p style="margin: 10px 0 0 0; font-size: 16px;">Your Personal Nutrition Plan</p>
	</div>

	<div style="background-color: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
		<h2 style="color: #4CAF50; margin-top: 0;">Hello %s!</h2>
		<p>Here is your plan for your goal: <strong>%s</strong>.</p>

		%s
		%s
		%s
		%s
		%s

		<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd;">
			<p style="color: #666; font-size: 12px; margin: 0;">
				These recommendations are informational and not medical advice.
			</p>
		</div>
	</div>
</body>
</html>
	`,
		user.Name,
		goal,
		goals,
		section("General", recs.General),
		section("Dietary", recs.Dietary),
		section("Exercise", recs.Exercise),
		section("Please Note", recs.Warnings),
	)
}
